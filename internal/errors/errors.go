// Package errors provides structured error handling with typed categories and context fields.
package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error for metrics and log formatting.
type ErrorType string

const (
	// TypeValidation indicates invalid configuration or arguments
	TypeValidation ErrorType = "validation"
	// TypeNotFound indicates a missing entry, e.g. a history index
	TypeNotFound ErrorType = "not_found"
	// TypeInternal indicates a broken invariant
	TypeInternal ErrorType = "internal"
)

// Error represents a structured error with type, message, and context.
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// ValidationError creates a new validation error.
func ValidationError(message string) *Error {
	return &Error{
		Type:    TypeValidation,
		Message: message,
		Context: make(map[string]any),
	}
}

// NotFoundError creates a new not-found error.
func NotFoundError(message string) *Error {
	return &Error{
		Type:    TypeNotFound,
		Message: message,
		Context: make(map[string]any),
	}
}

// InternalError creates a new internal error.
func InternalError(message string, cause error) *Error {
	return &Error{
		Type:    TypeInternal,
		Message: message,
		Cause:   cause,
		Context: make(map[string]any),
	}
}

// WithCause sets the underlying cause (chainable).
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithContext adds context fields to the error (chainable).
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// WithField is an alias for WithContext (chainable).
func (e *Error) WithField(key string, value any) *Error {
	return e.WithContext(key, value)
}

// LogAttrs flattens the error into slog key/value pairs.
func (e *Error) LogAttrs() []any {
	attrs := make([]any, 0, 4+2*len(e.Context))
	attrs = append(attrs, "error_type", string(e.Type), "error", e.Message)
	for k, v := range e.Context {
		attrs = append(attrs, k, v)
	}
	return attrs
}

// AsStructuredError converts any error into a structured Error.
// If err is already an *Error, returns it unchanged.
// Otherwise wraps it as an internal error.
func AsStructuredError(err error) *Error {
	if err == nil {
		return nil
	}

	var structuredErr *Error
	if errors.As(err, &structuredErr) {
		return structuredErr
	}

	return InternalError("internal error", err)
}

// IsType reports whether err is a structured error of type t.
func IsType(err error, t ErrorType) bool {
	var structuredErr *Error
	return errors.As(err, &structuredErr) && structuredErr.Type == t
}
