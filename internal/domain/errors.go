package domain

import "errors"

// Sentinel errors used throughout the application.
// Handlers translate these to HTTP status codes via a single mapError function.
var (
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict: user id already exists")
	ErrInvalidUserID = errors.New("user id must be between 1 and 64 characters")
	ErrInvalidName   = errors.New("name must be between 1 and 255 characters")
)
