package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrUsage indicates the command was invoked with missing or inconsistent input.
	ErrUsage = errors.New("usage error")

	// ErrValidation indicates a value failed a presence or format check.
	ErrValidation = errors.New("validation error")

	// ErrPermission indicates insufficient filesystem permissions.
	ErrPermission = errors.New("permission denied")
)
