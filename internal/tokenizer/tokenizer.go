package tokenizer

import (
	"strings"
	"unicode/utf8"
)

// Query is the normalized form of a raw search string: the full term
// for whole-string comparisons plus the individual words for word-level
// matching. Words below the minimum length are dropped from Words but
// remain part of FullTerm.
type Query struct {
	FullTerm string
	Words    []string
}

// IsEmpty reports whether the query carries no searchable text.
func (q Query) IsEmpty() bool {
	return q.FullTerm == ""
}

// Normalize lower-cases and trims a raw query and splits it into
// whitespace-separated words. No stemming, no locale normalization, no
// de-duplication of repeated words. minWordLength excludes short words
// (measured in runes) from word-level matching; the full term is kept
// regardless.
func Normalize(raw string, minWordLength int) Query {
	fullTerm := strings.ToLower(strings.TrimSpace(raw))

	words := make([]string, 0) // Initialize as empty slice, not nil
	for _, w := range strings.Fields(fullTerm) {
		if utf8.RuneCountInString(w) >= minWordLength {
			words = append(words, w)
		}
	}

	return Query{FullTerm: fullTerm, Words: words}
}
