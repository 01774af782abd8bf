package draft

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Sanitize collapses every run of whitespace to one space and trims both ends.
func Sanitize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TitleCase lower-cases s, then upper-cases the first letter of each
// space-separated word. Empty words (from repeated spaces) are dropped.
func TitleCase(s string) string {
	words := strings.Split(strings.ToLower(s), " ")
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		out = append(out, string(unicode.ToUpper(r))+w[size:])
	}
	return strings.Join(out, " ")
}
