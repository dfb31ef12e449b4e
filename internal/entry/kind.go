package entry

import "strings"

// Kind selects the body skeleton and metadata shape of a generated file.
type Kind string

const (
	// KindPost is a plain post with no body skeleton.
	KindPost Kind = "post"

	// KindGem describes a library with repository and registry links.
	KindGem Kind = "gem"

	// KindLink describes a website with a homepage link.
	KindLink Kind = "link"

	// KindBookmark is the only template of the bookmark category.
	KindBookmark Kind = "bookmark"

	// KindSlides is the only template of the slides category.
	KindSlides Kind = "slides"

	// KindFragment is a short note with Who/Terms/Links sections.
	KindFragment Kind = "fragment"
)

// DefaultKind is used when --template is absent or unrecognized.
const DefaultKind = KindPost

// Kinds returns all template kinds in display order.
func Kinds() []Kind {
	return []Kind{KindPost, KindGem, KindLink, KindBookmark, KindSlides, KindFragment}
}

// kindAliases maps the short names accepted on the command line.
var kindAliases = map[string]Kind{
	"bm":   KindBookmark,
	"frag": KindFragment,
}

// ParseKind returns the kind named by s and whether s was recognized.
func ParseKind(s string) (Kind, bool) {
	s = strings.TrimSpace(s)
	for _, k := range Kinds() {
		if string(k) == s {
			return k, true
		}
	}
	if k, ok := kindAliases[s]; ok {
		return k, true
	}
	return DefaultKind, false
}

// KindAliases returns the short names accepted for k.
func KindAliases(k Kind) []string {
	var out []string
	for alias, target := range kindAliases {
		if target == k {
			out = append(out, alias)
		}
	}
	return out
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}
