package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold returns the comparison form of s: lowercased, surrounding whitespace
// trimmed, inner whitespace collapsed to single spaces, diacritics removed.
// Answer checking and import dedupe compare strings through Fold only.
func Fold(s string) string {
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")

	folded, _, err := transform.String(stripAccents, s)
	if err != nil {
		return s
	}

	return folded
}

// Equal reports whether a and b match under Fold.
func Equal(a, b string) bool {
	return Fold(a) == Fold(b)
}
