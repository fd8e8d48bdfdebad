package attendance

import (
	"strconv"
	"strings"
	"time"

	"github.com/rpggio/sala/internal/domain/client"
)

// Text layouts used for attendance dates and times.
const (
	DateLayout = "02/01/2006"
	TimeLayout = "15:04"
)

// Record is one service interaction at the center. Dates and times are kept
// in their display form and carry no timezone.
type Record struct {
	ID            string `json:"id"`
	StartDate     string `json:"start_date"`
	StartTime     string `json:"start_time"`
	Document      string `json:"document"`
	Name          string `json:"name"`
	Theme         string `json:"theme"`
	Subtheme      string `json:"subtheme"`
	Description   string `json:"description"`
	EmailGuidance string `json:"email_guidance"`
}

// Date parses StartDate. ok is false for anything that is not three
// slash-separated integers forming a real calendar date.
func (r Record) Date() (time.Time, bool) {
	return ParseDate(r.StartDate)
}

// ParseDate parses a DD/MM/YYYY string.
func ParseDate(s string) (time.Time, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || month < 1 || month > 12 {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return time.Time{}, false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}

// HistoryEntry is a record as shown in the history view. ThemeLabel holds
// the raw theme id when the theme no longer exists.
type HistoryEntry struct {
	Record
	ThemeLabel string `json:"theme_label"`
}

// ListOptions filters attendance listings. Zero bounds are open; set bounds
// are inclusive calendar days.
type ListOptions struct {
	From time.Time
	To   time.Time
}

// EntityLookup is the outcome of resolving a document to a display name.
// When Found is false the caller falls back to manual entry and shows Notice.
type EntityLookup struct {
	Document string              `json:"document"`
	Name     string              `json:"name,omitempty"`
	Type     client.DocumentType `json:"type"`
	Found    bool                `json:"found"`
	Source   string              `json:"source,omitempty"`
	Notice   string              `json:"notice,omitempty"`
}

// Lookup sources.
const (
	SourceLocal     = "local"
	SourceAssistant = "assistant"
)

// GuidanceRequest describes what guidance text should be generated for.
type GuidanceRequest struct {
	ThemeID    string `json:"theme"`
	Subtheme   string `json:"subtheme"`
	EntityName string `json:"name,omitempty"`
}

// GuidanceSuggestion carries generated text. Fallback marks placeholder text
// produced because the collaborator failed.
type GuidanceSuggestion struct {
	Description   string `json:"description"`
	EmailTemplate string `json:"email_template"`
	Fallback      bool   `json:"fallback"`
	Notice        string `json:"notice,omitempty"`
}
