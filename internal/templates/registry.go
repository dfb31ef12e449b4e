package templates

import (
	"fmt"
	"strings"

	"github.com/slimblog/newpost/internal/entry"
)

// placeholderLink is a list item holding an empty external link labelled label.
func placeholderLink(label string) string {
	return "  li\n    a href=\"\" target=\"_blank\"\n      | " + label
}

func heading(title string) string {
	return "h1\n  | " + title
}

func noBody(entry.Entry) []string {
	return []string{"\n"}
}

func gemBody(entry.Entry) []string {
	return []string{
		"\nul",
		placeholderLink("Github"),
		placeholderLink("RubyGem"),
		"    code\n      |  ()",
		heading("What"),
		heading("Why"),
		heading("How"),
	}
}

func linkBody(entry.Entry) []string {
	return []string{
		"\nul",
		placeholderLink("Homepage"),
		heading("What"),
		heading("Why"),
	}
}

func fragmentBody(entry.Entry) []string {
	var out []string
	for _, section := range []string{"Who", "Terms", "Links"} {
		out = append(out, heading(section), "ul", placeholderLink(""))
	}
	return out
}

func slidesBody(entry.Entry) []string {
	return []string{
		"\nheader.caption\n  h2\n    |",
		"section.slide.no-page-number\n  h2\n    |",
		"section.slide\n  h2\n    |",
		"section.slide\n  h2 Q & A",
	}
}

// registry maps every kind to its template. It must cover entry.Kinds().
var registry = map[entry.Kind]Template{
	entry.KindPost: {
		Kind:        entry.KindPost,
		Description: "Plain post, metadata only",
		Default:     true,
		body:        noBody,
	},
	entry.KindGem: {
		Kind:        entry.KindGem,
		Description: "Library review with Github/RubyGem links and What/Why/How",
		body:        gemBody,
	},
	entry.KindLink: {
		Kind:        entry.KindLink,
		Description: "Website review with a Homepage link and What/Why",
		body:        linkBody,
	},
	entry.KindBookmark: {
		Kind:        entry.KindBookmark,
		Description: "Bookmark, metadata only; requires --website",
		body:        noBody,
	},
	entry.KindSlides: {
		Kind:        entry.KindSlides,
		Description: "Slide deck ending with a Q & A slide",
		body:        slidesBody,
	},
	entry.KindFragment: {
		Kind:        entry.KindFragment,
		Description: "Short note with Who/Terms/Links sections",
		body:        fragmentBody,
	},
}

// Get returns the template for kind k.
func Get(k entry.Kind) (Template, error) {
	t, ok := registry[k]
	if !ok {
		return Template{}, fmt.Errorf("unknown template %q; valid templates: %s", k, strings.Join(Names(), ", "))
	}
	return t, nil
}

// List returns all templates in display order.
func List() []Template {
	kinds := entry.Kinds()
	out := make([]Template, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, registry[k])
	}
	return out
}

// Names returns all template names.
func Names() []string {
	kinds := entry.Kinds()
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = string(k)
	}
	return out
}
