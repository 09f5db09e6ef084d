package match

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Normalize canonicalizes text for comparison: lower-case, every run of
// characters other than ASCII letters and digits collapsed to a single
// space, leading and trailing whitespace trimmed. Idempotent. Display
// values are never normalized in place.
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = nonAlnum.ReplaceAllString(text, " ")
	return strings.Join(strings.Fields(text), " ")
}
