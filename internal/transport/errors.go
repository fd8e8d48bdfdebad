package transport

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/rpggio/sala/internal/assist"
	"github.com/rpggio/sala/internal/domain/attendance"
	"github.com/rpggio/sala/internal/domain/client"
	"github.com/rpggio/sala/internal/domain/metrics"
	"github.com/rpggio/sala/internal/domain/theme"
	"github.com/rpggio/sala/internal/repository"
)

// Stable error codes shared by the HTTP API and the MCP tools.
const (
	CodeNotFound                = "NOT_FOUND"
	CodeInvalidInput            = "INVALID_INPUT"
	CodeDuplicateSubtheme       = "DUPLICATE_SUBTHEME"
	CodeTypeImmutable           = "TYPE_IMMUTABLE"
	CodeIDExhausted             = "ID_SPACE_EXHAUSTED"
	CodeStoreNotReady           = "STORE_NOT_READY"
	CodeStorageUnavailable      = "STORAGE_UNAVAILABLE"
	CodeAggregationFailed       = "AGGREGATION_FAILED"
	CodeCollaboratorUnavailable = "COLLABORATOR_UNAVAILABLE"
	CodeInternal                = "INTERNAL"
)

// APIError is the error body returned to clients.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
	Status       int    `json:"-"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain and store errors to API errors. Unknown errors become
// CodeInternal.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	switch {
	// Aggregation failures wrap the store error that caused them.
	case errors.Is(err, metrics.ErrAggregationFailure):
		return &APIError{Code: CodeAggregationFailed, Message: "dashboard could not be computed", RecoveryHint: "Refresh to try again", Status: http.StatusInternalServerError}
	case errors.Is(err, attendance.ErrAttendanceNotFound),
		errors.Is(err, client.ErrClientNotFound),
		errors.Is(err, theme.ErrThemeNotFound),
		errors.Is(err, repository.ErrNotFound):
		return &APIError{Code: CodeNotFound, Message: err.Error(), RecoveryHint: "Check the identifier", Status: http.StatusNotFound}
	case errors.Is(err, theme.ErrDuplicateSubtheme):
		return &APIError{Code: CodeDuplicateSubtheme, Message: err.Error(), RecoveryHint: "Subthemes must be unique within a theme", Status: http.StatusConflict}
	case errors.Is(err, client.ErrTypeImmutable):
		return &APIError{Code: CodeTypeImmutable, Message: err.Error(), RecoveryHint: "Delete and re-create the client to change its type", Status: http.StatusConflict}
	case errors.Is(err, attendance.ErrInvalidInput),
		errors.Is(err, client.ErrInvalidInput),
		errors.Is(err, theme.ErrInvalidInput):
		return &APIError{Code: CodeInvalidInput, Message: err.Error(), RecoveryHint: "Fill in the required fields", Status: http.StatusBadRequest}
	case errors.Is(err, attendance.ErrIDSpaceExhausted):
		return &APIError{Code: CodeIDExhausted, Message: err.Error(), RecoveryHint: "Retry the request", Status: http.StatusServiceUnavailable}
	case errors.Is(err, repository.ErrStoreNotReady):
		return &APIError{Code: CodeStoreNotReady, Message: "store is not initialized", Status: http.StatusServiceUnavailable}
	case errors.Is(err, repository.ErrStorageUnavailable):
		return &APIError{Code: CodeStorageUnavailable, Message: "storage unavailable", RecoveryHint: "Check the database file", Status: http.StatusServiceUnavailable}
	case errors.Is(err, assist.ErrUnavailable):
		return &APIError{Code: CodeCollaboratorUnavailable, Message: err.Error(), RecoveryHint: "Enter the data manually", Status: http.StatusBadGateway}
	default:
		return &APIError{Code: CodeInternal, Message: err.Error(), Status: http.StatusInternalServerError}
	}
}

func invalidInput(format string, args ...any) *APIError {
	return &APIError{Code: CodeInvalidInput, Message: fmt.Sprintf(format, args...), Status: http.StatusBadRequest}
}
