// Package errors provides sentinel errors, detailed error formatting and
// exit codes for the newpost CLI.
package errors

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// DetailError captures structured error information for terminal display.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file path involved (optional).
	Location string

	// Field is the flag or config key involved (optional).
	Field string

	// Context contains additional key-value context (optional).
	Context map[string]string

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

	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(e.Context[k])
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

// NewUsageError creates a usage error for a missing or inconsistent flag.
func NewUsageError(message, field, hint string) error {
	return &DetailError{
		Type:    "invalid input",
		Message: message,
		Field:   field,
		Hint:    hint,
		Cause:   ErrUsage,
	}
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, field, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Field:    field,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewPermissionError creates a permission denied error with details. The
// result matches both ErrPermission and cause.
func NewPermissionError(message, location, hint string, cause error) error {
	if cause != nil {
		message += ": " + cause.Error()
		cause = fmt.Errorf("%w: %w", ErrPermission, cause)
	} else {
		cause = ErrPermission
	}
	return &DetailError{
		Type:     "permission denied",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    cause,
	}
}

// WrapFSError annotates a filesystem error with the operation and path. Only
// permission failures become ErrPermission; any other cause is kept as is.
func WrapFSError(err error, op, location string) error {
	if os.IsPermission(err) {
		return NewPermissionError("could not "+op, location,
			"Check the permissions of "+location+" or choose another path.", err)
	}
	return fmt.Errorf("%s %s: %w", op, location, err)
}
