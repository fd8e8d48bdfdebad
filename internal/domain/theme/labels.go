package theme

// LabelFor returns the label of the theme with the given id. Attendance
// records may point at themes that were deleted since, so a miss yields the
// raw id instead of an error.
func LabelFor(themes []Theme, id string) string {
	for _, t := range themes {
		if t.ID == id {
			return t.Label
		}
	}
	return id
}

// Labels indexes theme labels by id.
func Labels(themes []Theme) map[string]string {
	out := make(map[string]string, len(themes))
	for _, t := range themes {
		out[t.ID] = t.Label
	}
	return out
}
