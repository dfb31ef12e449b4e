package templates

import (
	"strings"

	"github.com/slimblog/newpost/internal/entry"
)

// MetaPrefix starts every line of the metadata block.
const MetaPrefix = ".meta-data"

// RenderMeta renders the metadata block, terminated by the end marker. The
// website line appears only when a website is set, the draft line only for
// drafts.
func RenderMeta(e entry.Entry) string {
	lines := []string{
		metaLine("title", e.Title),
		metaLine("datetime", e.Datetime),
		metaLine("tags", e.TagList()),
		metaLine("category", string(e.Category)),
		metaLine("link", e.Slug),
		metaLine("file", e.File),
		metaLine("template", string(e.Template)),
	}
	if e.Website != "" {
		lines = append(lines, metaLine("website", e.Website))
	}
	if e.Draft {
		lines = append(lines, MetaPrefix+" draft")
	}
	lines = append(lines, MetaPrefix+" end")
	return strings.Join(lines, "\n")
}

func metaLine(key, value string) string {
	return MetaPrefix + " " + key + " " + value
}

// Render returns the full file text for e: metadata block, the body skeleton
// of e's template, and a trailing newline.
func Render(e entry.Entry) (string, error) {
	t, err := Get(e.Template)
	if err != nil {
		return "", err
	}

	parts := []string{RenderMeta(e)}
	parts = append(parts, t.Body(e)...)
	parts = append(parts, "\n")
	return strings.Join(parts, "\n"), nil
}
