// Package names canonicalizes team and player names for fuzzy matching
// against provider catalogs.
package names

import (
	"strings"
	"unicode"
)

// Normalize lower-cases a name, strips everything that is not a letter,
// digit or space, and collapses whitespace runs to single spaces.
func Normalize(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// SplitMatch splits a match description into two normalized team names.
// Recognized separators are " vs " (case-insensitive) and " - ". Any other
// shape returns ok=false; callers treat that as an unresolvable wager, not
// an error.
func SplitMatch(text string) (home, away string, ok bool) {
	var parts []string
	lower := strings.ToLower(text)
	if idx := strings.Index(lower, " vs "); idx >= 0 {
		parts = []string{text[:idx], text[idx+4:]}
	} else if idx := strings.Index(text, " - "); idx >= 0 {
		parts = []string{text[:idx], text[idx+3:]}
	} else {
		return "", "", false
	}
	home = Normalize(parts[0])
	away = Normalize(parts[1])
	if home == "" || away == "" {
		return "", "", false
	}
	return home, away, true
}

// FuzzyEqual implements the bidirectional substring policy used for all
// provider matching: two normalized names refer to the same entity when
// either contains the other ("la lakers" vs "los angeles lakers").
// Deliberately crude; no edit distance or phonetics. Gateways must go
// through this function so the policy can be upgraded in one place.
func FuzzyEqual(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
