package templates

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/slimblog/newpost/internal/entry"
	oerrors "github.com/slimblog/newpost/internal/errors"
	"github.com/slimblog/newpost/internal/output"
)

// Writer persists rendered entries.
type Writer struct {
	fs  afero.Fs
	ext string
}

// NewWriter creates a writer on fs producing files with extension ext.
func NewWriter(fs afero.Fs, ext string) *Writer {
	return &Writer{fs: fs, ext: NormalizeExtension(ext)}
}

// Path returns the file path for e: <dir>/<file>.<ext>.
func (w *Writer) Path(e entry.Entry) string {
	return filepath.Join(e.Dir, e.File+"."+w.ext)
}

// Write creates e's directory if needed and writes content to Path(e),
// replacing any existing file. It returns the written path.
func (w *Writer) Write(e entry.Entry, content string) (string, error) {
	if err := ValidateTarget(e, w.ext); err != nil {
		return "", err
	}

	path := w.Path(e)

	exists, err := afero.DirExists(w.fs, e.Dir)
	if err != nil {
		return "", fmt.Errorf("checking directory %s: %w", e.Dir, err)
	}
	if !exists {
		if err := w.fs.MkdirAll(e.Dir, 0o755); err != nil {
			return "", oerrors.WrapFSError(err, "create directory", e.Dir)
		}
		output.Debug("created directory", "path", e.Dir)
	}

	if ok, _ := afero.Exists(w.fs, path); ok {
		output.Warn("overwriting existing file", "path", path)
	}

	if err := afero.WriteFile(w.fs, path, []byte(content), 0o644); err != nil {
		return "", oerrors.WrapFSError(err, "write", path)
	}

	output.Debug("created file", "path", path, "bytes", len(content))
	return path, nil
}
