package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent lowercases an identifier and drops its separators, so that
// "implicitClass", "implicit-class" and "IMPLICIT_CLASS" compare equal.
func NormalizeIdent(s string) string {
	var sb strings.Builder

	sb.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		sb.WriteRune(unicode.ToLower(r))
	}

	return sb.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}
