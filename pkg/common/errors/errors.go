package errors

import (
	"errors"
	"fmt"
)

// Common error types used across the streamkit library

var (
	// ErrEmptyStream indicates that an aggregate operation requiring at least
	// one element was applied to an empty stream
	ErrEmptyStream = errors.New("stream is empty")

	// ErrInvalidArgument indicates that an operation received an argument
	// violating its precondition
	ErrInvalidArgument = errors.New("invalid argument")
)

// ValidationError describes a precondition violation on an operation argument.
// It unwraps to ErrInvalidArgument so callers can match the whole class with
// errors.Is.
type ValidationError struct {
	// Module is the package or component reporting the violation
	Module string

	// Field is the name of the offending argument
	Field string

	// Value is the rejected value
	Value interface{}

	// Reason explains why the value was rejected
	Reason string

	// Hint optionally suggests a valid value
	Hint string
}

// NewValidationError creates a ValidationError for the given module, field,
// value and reason.
func NewValidationError(module, field string, value interface{}, reason string) *ValidationError {
	return &ValidationError{
		Module: module,
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// WithHint attaches a suggestion to the error and returns the same instance
// for chaining.
func (e *ValidationError) WithHint(hint string) *ValidationError {
	e.Hint = hint
	return e
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: invalid %s=%v (%s)", e.Module, e.Field, e.Value, e.Reason)
	if e.Hint != "" {
		msg += " - " + e.Hint
	}
	return msg
}

// Unwrap returns ErrInvalidArgument so errors.Is matches the error class.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}
