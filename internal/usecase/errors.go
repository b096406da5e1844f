package usecase

import "errors"

// Sentinel errors the services wrap with fmt.Errorf("%w: ...") detail; the
// HTTP layer maps each one to a status code in mapError.
var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrConflict              = errors.New("resource conflict")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
