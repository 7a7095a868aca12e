package match

import (
	"strings"
	"unicode"
)

// Normalize folds s to lower case and strips separators (_, -, spaces and dots).
func Normalize(s string) string {
	var result strings.Builder

	result.Grow(len(s))

	for _, r := range s {
		if !isSeparator(r) {
			result.WriteRune(unicode.ToLower(r))
		}
	}

	return result.String()
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}
