// Package templates renders resolved entries into slim source files and
// writes them to disk.
package templates

import "github.com/slimblog/newpost/internal/entry"

// Template describes one template kind.
type Template struct {
	// Kind is the template identifier.
	Kind entry.Kind

	// Description explains the template's purpose.
	Description string

	// Default indicates if this is the default template when --template is omitted.
	Default bool

	// body produces the skeleton appended after the metadata block. Each
	// returned segment is joined with a newline.
	body func(e entry.Entry) []string
}

// Body returns the body skeleton segments for e.
func (t Template) Body(e entry.Entry) []string {
	if t.body == nil {
		return nil
	}
	return t.body(e)
}
