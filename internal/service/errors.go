// Package service implements the business rules of the task API.
package service

import (
	"errors"
	"fmt"
)

// Error kinds returned by TaskService. The API layer maps these to
// status codes; no other signal crosses the boundary.
var (
	// ErrTaskNotFound is returned when a task does not exist or belongs
	// to a different owner. The two cases are deliberately
	// indistinguishable so task IDs cannot be enumerated across users.
	ErrTaskNotFound = errors.New("task not found")

	// ErrDuplicateTitle is returned when a task with the same title
	// already exists anywhere in the store.
	ErrDuplicateTitle = errors.New("task title already exists")

	// ErrStoreUnavailable is returned when the persistence layer fails.
	// The underlying driver error is logged, never propagated.
	ErrStoreUnavailable = errors.New("task store unavailable")
)

// TaskServiceError is a custom error type for task service errors.
type TaskServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for TaskServiceError.
func (e *TaskServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("task service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *TaskServiceError) Unwrap() error {
	return e.Err
}

// NewTaskServiceError creates a new TaskServiceError.
func NewTaskServiceError(operation, message string, err error) *TaskServiceError {
	return &TaskServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
