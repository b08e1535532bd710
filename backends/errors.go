package backends

import "errors"

var (
	// ErrBackendNotFound is returned when attempting to create a backend
	// with an unknown name.
	ErrBackendNotFound = errors.New("backend not found")

	// ErrInvalidConfig is returned when the provided configuration is
	// invalid for the requested backend.
	ErrInvalidConfig = errors.New("invalid backend configuration")
)
