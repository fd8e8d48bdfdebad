package attendance

import "errors"

var (
	// ErrAttendanceNotFound indicates the attendance doesn't exist.
	ErrAttendanceNotFound = errors.New("attendance not found")
	// ErrInvalidInput indicates a required field is missing.
	ErrInvalidInput = errors.New("invalid attendance input")
	// ErrIDSpaceExhausted indicates no free attendance id was found.
	ErrIDSpaceExhausted = errors.New("could not allocate a free attendance id")
)
