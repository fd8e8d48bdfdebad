package attendance

import "strings"

// ValidateRegister checks the fields the intake form requires.
func ValidateRegister(rec Record) error {
	if strings.TrimSpace(rec.Document) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(rec.Theme) == "" {
		return ErrInvalidInput
	}
	return nil
}

// ValidateGuidance checks that both theme and subtheme are selected.
func ValidateGuidance(req GuidanceRequest) error {
	if strings.TrimSpace(req.ThemeID) == "" || strings.TrimSpace(req.Subtheme) == "" {
		return ErrInvalidInput
	}
	return nil
}
