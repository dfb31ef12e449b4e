//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	assert.NotEqual(t, ErrUsage, ErrValidation)
	assert.NotEqual(t, ErrUsage, ErrPermission)
	assert.NotEqual(t, ErrValidation, ErrPermission)
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "invalid input",
		Message:  "website is required",
		Location: "./src/bookmarks",
		Field:    "--website",
		Context:  map[string]string{"Category": "bookmark", "Alias": "bm"},
		Hint:     "Pass --website <url>",
	}

	output := detail.Error()

	assert.Contains(t, output, "Error: invalid input")
	assert.Contains(t, output, "Location: ./src/bookmarks")
	assert.Contains(t, output, "Field: --website")
	assert.Contains(t, output, "Category: bookmark")
	assert.Contains(t, output, "website is required")
	assert.Contains(t, output, "Hint: Pass --website <url>")
	assert.Less(t, strings.Index(output, "Alias"), strings.Index(output, "Category"), "context keys are sorted")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrUsage,
	}

	assert.True(t, errors.Is(detail, ErrUsage))
	assert.Equal(t, ErrUsage, detail.Unwrap())
}

func TestNewUsageError(t *testing.T) {
	err := NewUsageError("title is required", "<title>", "Pass the title as arguments")

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrUsage))

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "invalid input", detail.Type)
	assert.Equal(t, "<title>", detail.Field)
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("config exists", "/home/u/.newpost/config.yaml", "", "Remove it first")

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "/home/u/.newpost/config.yaml", detail.Location)
}

func TestNewPermissionError(t *testing.T) {
	cause := &fs.PathError{Op: "mkdir", Path: "/srv/posts", Err: syscall.EACCES}
	err := NewPermissionError("could not create directory", "/srv/posts", "", cause)

	assert.True(t, errors.Is(err, ErrPermission))
	assert.True(t, errors.Is(err, syscall.EACCES), "the underlying cause is kept")
	assert.Contains(t, err.Error(), "could not create directory: mkdir /srv/posts")
	assert.Equal(t, ExitPermissionDenied, ExitCodeFromError(err))

	bare := NewPermissionError("denied", "", "", nil)
	assert.True(t, errors.Is(bare, ErrPermission))
}

func TestWrapFSError(t *testing.T) {
	t.Run("permission failure", func(t *testing.T) {
		cause := &fs.PathError{Op: "open", Path: "a/b.slim", Err: syscall.EACCES}
		err := WrapFSError(cause, "write", "a/b.slim")

		assert.True(t, errors.Is(err, ErrPermission))
		assert.True(t, errors.Is(err, syscall.EACCES))

		var detail *DetailError
		require.True(t, errors.As(err, &detail))
		assert.Equal(t, "a/b.slim", detail.Location)
	})

	t.Run("other failures keep their cause", func(t *testing.T) {
		cause := &fs.PathError{Op: "write", Path: "a/b.slim", Err: syscall.ENOSPC}
		err := WrapFSError(cause, "write", "a/b.slim")

		assert.False(t, errors.Is(err, ErrPermission))
		assert.True(t, errors.Is(err, syscall.ENOSPC))
		assert.Equal(t, ExitGeneralError, ExitCodeFromError(err))
		assert.Contains(t, err.Error(), "write a/b.slim")
	})
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error returns success", err: nil, expected: ExitSuccess},
		{name: "usage error", err: ErrUsage, expected: ExitUsageError},
		{name: "validation error", err: ErrValidation, expected: ExitUsageError},
		{name: "permission error", err: ErrPermission, expected: ExitPermissionDenied},
		{name: "wrapped usage error", err: fmt.Errorf("resolving: %w", ErrUsage), expected: ExitUsageError},
		{name: "detail usage error", err: NewUsageError("x", "", ""), expected: ExitUsageError},
		{name: "exit error wins", err: &ExitError{Err: ErrUsage, Code: 7}, expected: 7},
		{name: "unknown error returns general error", err: errors.New("disk full"), expected: ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitErrorUnwrap(t *testing.T) {
	exitErr := NewExitError(ErrPermission, ExitPermissionDenied)

	assert.True(t, errors.Is(exitErr, ErrPermission))
	assert.Equal(t, "permission denied", exitErr.Error())
	assert.False(t, exitErr.Printed)
}
