package output

import (
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// DebugYAML logs v as an indented YAML document at debug level.
// Nothing is marshaled unless debug logging is enabled.
func DebugYAML(msg string, v interface{}) {
	if Level() > log.DebugLevel {
		return
	}
	out, err := yaml.Marshal(v)
	if err != nil {
		logger.Debug(msg, "error", err)
		return
	}
	logger.Debug(msg + "\n" + indent(strings.TrimRight(string(out), "\n"), "  "))
}

// DebugBlock logs a multi-line block of text at debug level, indented.
func DebugBlock(msg, text string) {
	logger.Debug(msg + "\n" + indent(strings.TrimRight(text, "\n"), "  "))
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
