package entry

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	fullDatetimeRe = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}_[0-9]{2}:[0-9]{2}:[0-9]{2}$`)
	dateOnlyRe     = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)
	timeOnlyRe     = regexp.MustCompile(`^[0-9]{2}:[0-9]{2}:[0-9]{2}$`)
)

// ResolveDatetime turns a --datetime value into "YYYY-MM-DD hh:mm:ss".
//
// A full "YYYY-MM-DD_hh:mm:ss" value is used verbatim with the underscore
// replaced by a space. A date-only or time-only value is completed from now.
// Anything else, including the empty string, yields now. The digits of a
// matching value are not range-checked.
func ResolveDatetime(value string, now time.Time) string {
	switch {
	case fullDatetimeRe.MatchString(value):
		return strings.Replace(value, "_", " ", 1)
	case dateOnlyRe.MatchString(value):
		return fmt.Sprintf("%s %02d:%02d:%02d", value, now.Hour(), now.Minute(), now.Second())
	case timeOnlyRe.MatchString(value):
		return fmt.Sprintf("%04d-%02d-%02d %s", now.Year(), int(now.Month()), now.Day(), value)
	default:
		return now.Format("2006-01-02 15:04:05")
	}
}

// compactTimestamp turns "YYYY-MM-DD hh:mm:ss" into "YYYY-MM-DD-hhmmss".
func compactTimestamp(datetime string) string {
	return strings.ReplaceAll(strings.ReplaceAll(datetime, " ", "-"), ":", "")
}
