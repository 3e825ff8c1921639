package apperrors

import "errors"

// Common errors
var (
	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionExpired     = errors.New("session expired")
	ErrSessionInvalid     = errors.New("invalid session")
	ErrSessionNotFound    = errors.New("session not found")

	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
)

// Application submission errors
var (
	// ErrIncompleteApplication is returned when a submission is missing a
	// required field or has no domain selected. The message shown to the
	// applicant is fixed and lives in the services package.
	ErrIncompleteApplication = errors.New("application is missing required fields")

	// ErrPersistenceFailed is returned when an application could not be
	// written to the store. The underlying cause is wrapped for logging and
	// must never reach the applicant.
	ErrPersistenceFailed = errors.New("failed to persist application")
)

// CustomError wraps a sentinel error with a human-readable message.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped sentinel so errors.Is keeps working.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}
