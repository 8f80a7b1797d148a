package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrUnknownKind is returned when a search names an entity kind the
	// engine does not know.
	ErrUnknownKind = errors.New("unknown entity kind")

	// ErrFetchFailed is returned when the coarse-filter fetch fails.
	ErrFetchFailed = errors.New("coarse fetch failed")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// UnknownKindError represents an unknown entity kind error with context
type UnknownKindError struct {
	Kind string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown entity kind '%s' (want 'jobs' or 'freelancers')", e.Kind)
}

func (e *UnknownKindError) Is(target error) bool {
	return target == ErrUnknownKind
}

// NewUnknownKindError creates a new UnknownKindError
func NewUnknownKindError(kind string) *UnknownKindError {
	return &UnknownKindError{Kind: kind}
}

// FetchError represents a failed coarse-filter fetch with context
type FetchError struct {
	Kind string
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("coarse fetch for '%s' failed: %v", e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailed
}

// NewFetchError creates a new FetchError wrapping the underlying cause
func NewFetchError(kind string, err error) *FetchError {
	return &FetchError{Kind: kind, Err: err}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
