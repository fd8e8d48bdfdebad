package sqlite

import (
	"fmt"
	"strings"

	"github.com/rpggio/sala/internal/repository"
)

var unavailableMarkers = []string{
	"unable to open database file",
	"disk I/O error",
	"database disk image is malformed",
	"file is not a database",
	"attempt to write a readonly database",
	"database or disk is full",
	"sql: database is closed",
}

func isUnavailable(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, marker := range unavailableMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// storageError wraps err with op, tagging failures of the underlying file
// as repository.ErrStorageUnavailable.
func storageError(op string, err error) error {
	if isUnavailable(err) {
		return fmt.Errorf("%w: %s: %w", repository.ErrStorageUnavailable, op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
