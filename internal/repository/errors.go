package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrStorageUnavailable is returned when the underlying store cannot be opened or created
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrStoreNotReady is returned when an operation runs before the store was initialized
	ErrStoreNotReady = errors.New("store not ready: Init has not completed")
)
