// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidFormat is returned when data is not in the expected format.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")
)

// validationSentinels lists every sentinel a Validate method or parser
// can return. Kept next to the definitions so the two stay in sync.
var validationSentinels = []error{
	ErrValidation,
	ErrInvalidFormat,
	ErrInvalidID,
	ErrEmptyTaskID,
	ErrEmptyTaskOwnerID,
	ErrTaskTitleTooShort,
	ErrTaskTitleTooLong,
	ErrEmptyTaskDescription,
	ErrInvalidTaskEmail,
	ErrEmptyTaskDueDate,
	ErrInvalidDueDate,
	ErrInvalidPriority,
	ErrInvalidStatus,
	ErrEmptyUserID,
	ErrEmptyUsername,
	ErrUsernameTooShort,
	ErrUsernameTooLong,
	ErrEmptyDisplayName,
	ErrPasswordTooShort,
	ErrPasswordTooLong,
	ErrEmptyPassword,
	ErrEmptyHashedPassword,
}

// IsValidationError reports whether err is (or wraps) one of the domain
// validation errors. The API layer uses this to map failures to 400
// without enumerating every sentinel itself.
func IsValidationError(err error) bool {
	for _, sentinel := range validationSentinels {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// ValidationError describes a validation failure on a specific field.
// It wraps one of the sentinel domain errors so callers can use errors.Is
// while still getting a field-specific message for the client.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}
