// Package entry resolves raw command-line input into the immutable record
// that describes one content file to scaffold.
package entry

import "strings"

// FragmentTitleSuffix is appended to the title of fragment entries.
const FragmentTitleSuffix = " 碎片"

// FragmentTag replaces the tags of fragment entries.
const FragmentTag = "fragment"

// Entry is the fully resolved description of one content file. It is built
// once by Resolve and only read afterwards.
type Entry struct {
	Title    string   `yaml:"title"`
	Category Category `yaml:"category"`
	Template Kind     `yaml:"template"`

	// Datetime is "YYYY-MM-DD hh:mm:ss".
	Datetime string   `yaml:"datetime"`
	Slug     string   `yaml:"slug"`
	Tags     []string `yaml:"tags"`
	Website  string   `yaml:"website,omitempty"`
	Draft    bool     `yaml:"draft"`

	// Dir is the output directory.
	Dir string `yaml:"dir"`

	// File is the base name without extension: compact timestamp + "-" + slug.
	File string `yaml:"file"`
}

// TagList returns the tags joined with commas, as written to the metadata block.
func (e Entry) TagList() string {
	return strings.Join(e.Tags, ",")
}

// Dirs holds the default output directory per template family.
type Dirs struct {
	Posts     string
	Bookmarks string
	Slides    string
}

// For returns the default directory for kind k.
func (d Dirs) For(k Kind) string {
	switch k {
	case KindBookmark:
		return d.Bookmarks
	case KindSlides:
		return d.Slides
	default:
		// post, gem, link, fragment
		return d.Posts
	}
}
