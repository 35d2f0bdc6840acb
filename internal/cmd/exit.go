// Package cmd provides command implementations for the Lamina CLI.
package cmd

import (
	"errors"

	lerrors "github.com/laminakit/lamina/internal/errors"
)

// Exit codes reported to the shell.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates a composed document failed validation.
	ExitValidationError = 2

	// ExitLoadError indicates a fragment file could not be loaded.
	ExitLoadError = 3

	// ExitMergeDepthError indicates the merge recursion limit was exceeded.
	ExitMergeDepthError = 4

	// ExitNotFound indicates a fragment, directory, or file was not found.
	ExitNotFound = 5

	// ExitUsageError indicates invalid command-line usage.
	ExitUsageError = 6
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitLoadError:
		return "Load Error"
	case ExitMergeDepthError:
		return "Merge Depth Error"
	case ExitNotFound:
		return "Not Found"
	case ExitUsageError:
		return "Usage Error"
	default:
		return "Unknown"
	}
}

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, lerrors.ErrValidation):
		return ExitValidationError
	case errors.Is(err, lerrors.ErrLoad):
		return ExitLoadError
	case errors.Is(err, lerrors.ErrMergeDepth):
		return ExitMergeDepthError
	case errors.Is(err, lerrors.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, lerrors.ErrEmptySelection),
		errors.Is(err, lerrors.ErrDuplicateSelection):
		return ExitUsageError
	default:
		return ExitGeneralError
	}
}
