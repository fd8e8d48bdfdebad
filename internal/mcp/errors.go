package mcp

import (
	"fmt"

	"github.com/rpggio/sala/internal/transport"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	if e.RecoveryHint == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.RecoveryHint)
}

// MapError maps domain errors to MCP error codes. The codes match the HTTP
// API.
func MapError(err error) *APIError {
	mapped := transport.MapError(err)
	if mapped == nil {
		return nil
	}
	return &APIError{
		Code:         mapped.Code,
		Message:      mapped.Message,
		RecoveryHint: mapped.RecoveryHint,
	}
}
