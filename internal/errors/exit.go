package errors

import "errors"

// Exit codes returned by the newpost binary.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error, including I/O failures.
	ExitGeneralError = 1

	// ExitUsageError indicates missing or invalid command-line input.
	ExitUsageError = 2

	// ExitPermissionDenied indicates the output location is not writable.
	ExitPermissionDenied = 4
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed is set when the command layer has already reported the error.
	Printed bool
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
	case errors.Is(err, ErrUsage), errors.Is(err, ErrValidation):
		return ExitUsageError
	case errors.Is(err, ErrPermission):
		return ExitPermissionDenied
	default:
		return ExitGeneralError
	}
}
