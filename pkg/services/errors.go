package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity does not exist or is not
	// visible to the requesting user.
	ErrNotFound = errors.New("entity not found")

	// ErrNoTasksAvailable is returned by ClaimNext when the queue is empty.
	ErrNoTasksAvailable = errors.New("no queued tasks available")

	// ErrConflictingUpdate is returned when a progress update would move a
	// task backwards or touch a task that already reached a terminal state.
	ErrConflictingUpdate = errors.New("conflicting task update")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
