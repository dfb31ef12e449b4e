// Package config provides configuration loading and management.
package config

import "path/filepath"

// Built-in defaults, used when neither the config file nor the environment
// supplies a value.
const (
	DefaultPostsDir     = "./src/posts"
	DefaultBookmarksDir = "./src/bookmarks"
	DefaultSlidesDir    = "./src/slides"
	DefaultExtension    = "slim"
)

// PathsConfig holds the default output directory per template family.
type PathsConfig struct {
	// Posts is used by the post, gem, link and fragment templates.
	// Env: NEWPOST_PATHS_POSTS
	Posts string `mapstructure:"posts" yaml:"posts"`

	// Bookmarks is used by the bookmark template.
	// Env: NEWPOST_PATHS_BOOKMARKS
	Bookmarks string `mapstructure:"bookmarks" yaml:"bookmarks"`

	// Slides is used by the slides template.
	// Env: NEWPOST_PATHS_SLIDES
	Slides string `mapstructure:"slides" yaml:"slides"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: false. Always on at -vv.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the newpost configuration file (~/.newpost/config.yaml).
type Config struct {
	// Paths holds the default output directories.
	Paths PathsConfig `mapstructure:"paths" yaml:"paths"`

	// Extension is the file extension of generated files, without the dot.
	// Env: NEWPOST_EXTENSION
	Extension string `mapstructure:"extension" yaml:"extension"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by --init-config to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Paths: PathsConfig{
			Posts:     DefaultPostsDir,
			Bookmarks: DefaultBookmarksDir,
			Slides:    DefaultSlidesDir,
		},
		Extension: DefaultExtension,
	}
}

// WithDefaults returns a copy of c with empty fields filled from DefaultConfig
// and "~" expanded in directory paths.
func (c *Config) WithDefaults() *Config {
	out := *c
	def := DefaultConfig()

	if out.Paths.Posts == "" {
		out.Paths.Posts = def.Paths.Posts
	}
	if out.Paths.Bookmarks == "" {
		out.Paths.Bookmarks = def.Paths.Bookmarks
	}
	if out.Paths.Slides == "" {
		out.Paths.Slides = def.Paths.Slides
	}
	if out.Extension == "" {
		out.Extension = def.Extension
	}

	out.Paths.Posts = ExpandTilde(out.Paths.Posts)
	out.Paths.Bookmarks = ExpandTilde(out.Paths.Bookmarks)
	out.Paths.Slides = ExpandTilde(out.Paths.Slides)

	return &out
}

// ExpandTilde expands a leading ~ to the user's home directory. Paths that
// cannot be expanded are returned unchanged.
func ExpandTilde(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return filepath.FromSlash(expanded)
}
