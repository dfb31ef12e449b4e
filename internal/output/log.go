// Package output provides terminal output utilities.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Verbosity thresholds for the repeatable -v flag.
const (
	// VerbosityDebug enables debug-level log lines.
	VerbosityDebug = 1

	// VerbosityTrace additionally reports callers and dumps rendered files.
	VerbosityTrace = 2
)

// logger is the package-level logger instance.
var logger *log.Logger

// stdout is where Print and Println write; swapped in tests.
var stdout io.Writer = os.Stdout

func init() {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
}

// LogConfig holds the inputs that shape the logger.
type LogConfig struct {
	// Verbosity is the number of times -v was given.
	Verbosity int

	// Timestamps controls timestamp reporting. Nil means off, unless
	// Verbosity reaches VerbosityTrace.
	Timestamps *bool
}

// SetupLogging configures the logger based on verbosity.
func SetupLogging(cfg LogConfig) {
	level := log.InfoLevel
	if cfg.Verbosity >= VerbosityDebug {
		level = log.DebugLevel
	}

	timestamps := false
	if cfg.Timestamps != nil {
		timestamps = *cfg.Timestamps
	}
	if cfg.Verbosity >= VerbosityTrace {
		timestamps = true
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: timestamps,
		ReportCaller:    cfg.Verbosity >= VerbosityTrace,
		TimeFormat:      "15:04:05",
	})
}

// SetWriter redirects log output, keeping the current options.
func SetWriter(w io.Writer) {
	logger.SetOutput(w)
}

// SetStdout redirects Print and Println. It returns the previous writer.
func SetStdout(w io.Writer) io.Writer {
	prev := stdout
	stdout = w
	return prev
}

// Level reports the current log level.
func Level() log.Level {
	return logger.GetLevel()
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	logger.Debug(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	logger.Warn(msg, keyvals...)
}

// Print prints a message to stdout without any formatting.
func Print(msg string) {
	_, _ = io.WriteString(stdout, msg)
}

// Println prints a message to stdout with a newline.
func Println(msg string) {
	_, _ = io.WriteString(stdout, msg+"\n")
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}
