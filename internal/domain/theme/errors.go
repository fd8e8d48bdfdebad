package theme

import "errors"

var (
	// ErrThemeNotFound indicates the theme doesn't exist.
	ErrThemeNotFound = errors.New("theme not found")
	// ErrInvalidInput indicates invalid theme input.
	ErrInvalidInput = errors.New("invalid theme input")
	// ErrDuplicateSubtheme indicates the subtheme already exists in the theme.
	ErrDuplicateSubtheme = errors.New("duplicate subtheme")
)
