package metrics

// MonthBucket counts attendances in one calendar month.
type MonthBucket struct {
	Label string `json:"label"` // MM/YYYY
	Month int    `json:"month"`
	Year  int    `json:"year"`
	Count int    `json:"count"`
}

// YearBucket counts attendances in one year.
type YearBucket struct {
	Year  string `json:"year"`
	Count int    `json:"count"`
}

// CategoryShare is a theme's share of all attendances.
type CategoryShare struct {
	ID         string  `json:"id"`
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// HourBucket counts attendances started within one business hour. Percentage
// is relative to the busiest business hour.
type HourBucket struct {
	Hour       string  `json:"hour"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Dashboard holds every derived statistic. Empty is set when there are no
// attendances, in which case nothing else is computed.
type Dashboard struct {
	Empty        bool            `json:"empty"`
	Total        int             `json:"total"`
	DailyAverage float64         `json:"daily_average"`
	Monthly      []MonthBucket   `json:"monthly"`
	Yearly       []YearBucket    `json:"yearly"`
	Categories   []CategoryShare `json:"categories"`
	Hourly       []HourBucket    `json:"hourly"`
	CurrentYear  int             `json:"current_year"`
	TopCategory  *CategoryShare  `json:"top_category,omitempty"`
}
