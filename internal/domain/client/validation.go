package client

import "strings"

// ValidateSave checks the fields required to store a client.
func ValidateSave(c Client) error {
	if strings.TrimSpace(c.Document) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(c.Name) == "" {
		return ErrInvalidInput
	}
	switch c.Type {
	case TypeCPF, TypeCNPJ:
	default:
		return ErrInvalidInput
	}
	return nil
}
