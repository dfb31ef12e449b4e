// Package slug turns arbitrary titles into URL-safe slugs.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// symbols are spelled out before punctuation is collapsed.
var symbols = strings.NewReplacer(
	"&", " and ",
	"@", " at ",
	"%", " percent ",
	"+", " plus ",
)

// letters that NFKD does not decompose to an ASCII base.
var special = strings.NewReplacer(
	"ß", "ss",
	"æ", "ae",
	"Æ", "ae",
	"ø", "o",
	"Ø", "o",
	"œ", "oe",
	"Œ", "oe",
	"đ", "d",
	"Đ", "d",
	"ł", "l",
	"Ł", "l",
	"þ", "th",
	"Þ", "th",
)

// Make converts s to a lowercase, hyphen-separated slug.
//
// Latin letters are stripped of diacritics ("Café" -> "cafe"). Letters and
// digits of other scripts are kept, so a title written entirely in CJK still
// yields a non-empty slug. Every other run of characters becomes one hyphen.
func Make(s string) string {
	s = special.Replace(s)
	s = symbols.Replace(s)
	s = fold(s)
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	pendingDash := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}

// fold removes combining marks after compatibility decomposition.
func fold(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
