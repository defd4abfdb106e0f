package database

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold returns the Unicode case-folded form of s, trimmed. SQLite's own LOWER and LIKE only fold
// ASCII, so labels are compared through this key instead.
func Fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes the LIKE wildcards of s for use with ESCAPE '\'.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// Contains builds a LIKE pattern matching s anywhere.
func Contains(s string) string {
	return "%" + EscapeLike(s) + "%"
}

// HasPrefix builds a LIKE pattern matching values starting with s.
func HasPrefix(s string) string {
	return EscapeLike(s) + "%"
}
