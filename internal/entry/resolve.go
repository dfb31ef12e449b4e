package entry

import (
	"strings"
	"time"

	oerrors "github.com/slimblog/newpost/internal/errors"
	"github.com/slimblog/newpost/internal/output"
	"github.com/slimblog/newpost/internal/slug"
)

// Options holds raw command-line values. The zero value of a field means the
// flag was not given.
type Options struct {
	// Args are the positional arguments; joined with spaces they form the title.
	Args []string

	// Tags is the comma-separated --tags value.
	Tags string

	Category string
	Slug     string
	Draft    bool
	Template string
	Datetime string
	Website  string

	// Path is the explicit --path output directory.
	Path string

	// Defaults supplies the output directory when Path is empty.
	Defaults Dirs
}

// Resolve applies defaults and derivation rules to opts. The rules run in a
// fixed order because later ones read fields derived by earlier ones. now is
// the clock reading used to complete partial datetimes.
//
// A missing title, or a bookmark without a website, is a usage error
// (errors.ErrUsage).
func Resolve(opts Options, now time.Time) (Entry, error) {
	var e Entry

	e.Title = strings.Join(opts.Args, " ")
	if e.Title == "" {
		return Entry{}, oerrors.NewUsageError(
			"You should provide the title.",
			"<title>",
			"Pass the title as positional arguments, e.g. newpost My First Post",
		)
	}

	category, ok := ParseCategory(opts.Category)
	if !ok && opts.Category != "" {
		output.Debug("unknown category, using default", "given", opts.Category, "default", category)
	}
	e.Category = category

	kind, ok := ParseKind(opts.Template)
	if !ok && opts.Template != "" {
		output.Debug("unknown template, using default", "given", opts.Template, "default", kind)
	}
	e.Template = kind

	e.Datetime = ResolveDatetime(opts.Datetime, now)

	if opts.Slug != "" {
		e.Slug = opts.Slug
	} else {
		e.Slug = slug.Make(e.Title)
	}

	e.Tags = splitTags(opts.Tags)
	e.Website = opts.Website
	e.Draft = opts.Draft

	if forced, ok := e.Category.ForcedKind(); ok {
		if e.Template != forced && opts.Template != "" {
			output.Debug("category forces template", "category", e.Category, "requested", e.Template, "template", forced)
		}
		e.Template = forced
	}

	if e.Category == CategoryBookmark && e.Website == "" {
		return Entry{}, oerrors.NewUsageError(
			"You should provide the website if the category is bookmark.",
			"--website",
			"Pass --website <url> together with --category bookmark",
		)
	}

	if e.Template == KindFragment {
		e.Category = CategoryCoding
		e.Tags = []string{FragmentTag}
		e.Slug = strings.ReplaceAll(e.Title, ".", "") + "-fragment"
		e.Title += FragmentTitleSuffix
	}

	if opts.Path != "" {
		e.Dir = opts.Path
	} else {
		e.Dir = opts.Defaults.For(e.Template)
	}

	e.File = compactTimestamp(e.Datetime) + "-" + e.Slug

	return e, nil
}

// splitTags splits a comma-separated list, keeping order and empty items as
// given.
func splitTags(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}
