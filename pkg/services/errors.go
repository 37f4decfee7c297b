package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidTransition is returned when a status change violates the
	// entity's state machine (run statuses, candidate statuses)
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrPreconditionFailed is returned when an operation requires project
	// artifacts (problem spec, world model) that do not exist yet
	ErrPreconditionFailed = errors.New("precondition failed")

	// ErrConcurrentModification is returned when optimistic locking fails
	ErrConcurrentModification = errors.New("concurrent modification detected")
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

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// PreconditionError carries the debugging detail returned when a pipeline
// operation is attempted against a project that is missing its problem spec
// or world model. ExistingProjectIDs helps track down id mix-ups between
// environments.
type PreconditionError struct {
	Missing            []string
	ProjectID          string
	ExistingProjectIDs []string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("project %s is missing prerequisites %v (existing projects: %v)",
		e.ProjectID, e.Missing, e.ExistingProjectIDs)
}

// Unwrap lets errors.Is(err, ErrPreconditionFailed) match.
func (e *PreconditionError) Unwrap() error {
	return ErrPreconditionFailed
}
