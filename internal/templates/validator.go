package templates

import (
	"strings"

	"github.com/slimblog/newpost/internal/entry"
	oerrors "github.com/slimblog/newpost/internal/errors"
)

// NormalizeExtension strips surrounding whitespace and leading dots, so
// "slim", ".slim" and " .slim " all name the same extension.
func NormalizeExtension(ext string) string {
	return strings.TrimLeft(strings.TrimSpace(ext), ".")
}

// ValidateTarget checks that e names a file to write and ext is usable.
func ValidateTarget(e entry.Entry, ext string) error {
	if e.File == "" {
		return oerrors.NewValidationError("file name is empty", "", "file", "")
	}
	if e.Dir == "" {
		return oerrors.NewValidationError("output directory is empty", "", "--path",
			"Pass --path or set paths.* in the config file.")
	}
	if NormalizeExtension(ext) == "" {
		return oerrors.NewValidationError("file extension is empty", "", "extension",
			"Set extension in the config file, e.g. extension: slim")
	}
	return nil
}
