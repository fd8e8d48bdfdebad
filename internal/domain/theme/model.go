package theme

// Theme is a node of the attendance taxonomy. Its ID is referenced by
// attendance records, so it stays stable for the lifetime of the store.
type Theme struct {
	ID        string   `json:"id"`
	Label     string   `json:"label"`
	Subthemes []string `json:"subthemes"`
}

// Clone returns a deep copy so callers can edit subthemes without aliasing.
func (t Theme) Clone() Theme {
	out := t
	out.Subthemes = append([]string(nil), t.Subthemes...)
	if out.Subthemes == nil {
		out.Subthemes = []string{}
	}
	return out
}
