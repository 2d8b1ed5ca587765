package helper

import (
	"strings"
	"unicode"
)

// Slugify converts a display string into a URL-safe lowercase token.
// Runs of non-alphanumeric characters collapse into a single hyphen;
// leading and trailing hyphens are stripped.
func Slugify(s string) string {
	var b strings.Builder
	prevHyphen := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) && r < 128 || unicode.IsDigit(r) && r < 128 {
			b.WriteRune(r)
			prevHyphen = false
			continue
		}
		if !prevHyphen && b.Len() > 0 {
			b.WriteByte('-')
			prevHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
