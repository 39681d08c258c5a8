package library

import (
	"regexp"
	"strings"
)

// Characters that cannot appear in a path segment on at least one of the
// supported platforms (the Windows set, which is the strictest).
var invalidSegmentChars = regexp.MustCompile(`[/\\:*?"<>|]`)

// Sanitize makes an arbitrary tag value safe to use as a single path
// segment.
//
// Each of the characters / \ : * ? " < > | becomes an underscore, then
// trailing spaces and periods are stripped (Windows rejects names ending
// in either). Total over any input; an all-invalid input can legitimately
// come back empty.
//
//	Sanitize("AC/DC")   // "AC_DC"
//	Sanitize("Hello.")  // "Hello"
func Sanitize(s string) string {
	s = invalidSegmentChars.ReplaceAllString(s, "_")
	return strings.TrimRight(s, " .")
}
