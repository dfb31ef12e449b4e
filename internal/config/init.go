package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	oerrors "github.com/slimblog/newpost/internal/errors"
)

// WriteDefault writes DefaultConfig as YAML to path, creating parent
// directories with 0700. An existing file is never overwritten.
func WriteDefault(path string) error {
	expanded, err := ExpandPath(path)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	exists, err := ConfigFileExists(expanded)
	if err != nil {
		return oerrors.WrapFSError(err, "check", expanded)
	}
	if exists {
		return oerrors.NewValidationError(
			"configuration already exists",
			expanded,
			"",
			"Edit the existing file or remove it before running --init-config again.",
		)
	}

	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("encoding default config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(expanded), 0o700); err != nil {
		return oerrors.WrapFSError(err, "create directory", filepath.Dir(expanded))
	}

	if err := os.WriteFile(expanded, data, 0o600); err != nil {
		return oerrors.WrapFSError(err, "write", expanded)
	}

	return nil
}
