package entry

import "strings"

// Category classifies a content item independently of its template, except
// that bookmark and slides each own exactly one template.
type Category string

const (
	CategoryCoding   Category = "coding"
	CategoryLife     Category = "life"
	CategoryTools    Category = "tools"
	CategoryBookmark Category = "bookmark"
	CategorySlides   Category = "slides"
)

// DefaultCategory is used when --category is absent or unrecognized.
const DefaultCategory = CategoryCoding

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{CategoryCoding, CategoryLife, CategoryTools, CategoryBookmark, CategorySlides}
}

// ParseCategory returns the category named by s and whether s was recognized.
// "bm" is accepted for bookmark.
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	if s == "bm" {
		return CategoryBookmark, true
	}
	for _, c := range Categories() {
		if string(c) == s {
			return c, true
		}
	}
	return DefaultCategory, false
}

// ForcedKind reports the template kind a category is tied to, if any.
func (c Category) ForcedKind() (Kind, bool) {
	switch c {
	case CategoryBookmark:
		return KindBookmark, true
	case CategorySlides:
		return KindSlides, true
	default:
		return "", false
	}
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}
