package config

import (
	"fmt"
	"os"

	"github.com/slimblog/newpost/internal/output"
)

// ConfigEnvVar names the environment variable that overrides the config path.
const ConfigEnvVar = "NEWPOST_CONFIG"

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolveConfigPathResult contains the resolved config path and its source.
type ResolveConfigPathResult struct {
	// ConfigPath is the resolved config file path.
	ConfigPath string
	// Source indicates where the config path came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) NEWPOST_CONFIG env, (3) ~/.newpost/config.yaml
func ResolveConfigPath(flagValue string) (ResolveConfigPathResult, error) {
	result := ResolveConfigPathResult{
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv(ConfigEnvVar)

	// The default path needs a home directory; it is only an error to lack
	// one when nothing else names the file.
	paths, homeErr := DefaultPaths()

	switch {
	case flagValue != "":
		result.ConfigPath = flagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
	case envValue != "":
		result.ConfigPath = envValue
		result.Source = SourceEnv
	default:
		if homeErr != nil {
			return result, fmt.Errorf("locating default config file: %w", homeErr)
		}
		result.ConfigPath = paths.ConfigFile
		result.Source = SourceDefault
		return result, nil
	}

	if homeErr == nil {
		result.Shadowed[SourceDefault] = paths.ConfigFile
	}
	return result, nil
}

// LogResolved logs the config path resolution at DEBUG level.
func (r ResolveConfigPathResult) LogResolved() {
	output.Debug("config path resolved", "path", r.ConfigPath, "source", r.Source)
	for source, shadowed := range r.Shadowed {
		output.Debug("  shadowed by higher precedence",
			"shadowed_source", source,
			"shadowed_value", shadowed,
		)
	}
}
