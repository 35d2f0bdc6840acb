// Package errors provides sentinel errors for the Lamina CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrLoad indicates a fragment file could not be loaded.
	ErrLoad = errors.New("load error")

	// ErrMergeDepth indicates the merge recursion limit was exceeded.
	ErrMergeDepth = errors.New("max merge depth exceeded")

	// ErrValidation indicates a composed document failed validation.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a fragment, directory, or file was not found.
	ErrNotFound = errors.New("not found")

	// ErrEmptySelection indicates finalize was called on an empty selection.
	ErrEmptySelection = errors.New("empty selection")

	// ErrDuplicateSelection indicates the fragment is already selected.
	ErrDuplicateSelection = errors.New("duplicate selection")
)

// DetailError captures structured error information for user-facing output.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file path, optionally with line and column.
	Location string

	// Field is the field name for validation errors (optional).
	Field string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewLoadError creates a load error with location detail.
func NewLoadError(message, location, hint string) error {
	return &DetailError{
		Type:     "load failed",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrLoad,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, field, hint string) error {
	return &DetailError{
		Type:    "validation failed",
		Message: message,
		Field:   field,
		Hint:    hint,
		Cause:   ErrValidation,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
