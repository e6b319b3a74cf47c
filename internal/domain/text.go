package domain

import (
	"strings"
	"unicode"
)

// NormalizeWord lowercases w and strips every non-letter rune.
func NormalizeWord(w string) string {
	var b strings.Builder
	b.Grow(len(w))
	for _, r := range w {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// Tokenize splits text on whitespace and normalizes every token.
// Tokens that contain no letters are dropped.
func Tokenize(text string) []string {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if w := NormalizeWord(f); w != "" {
			tokens = append(tokens, w)
		}
	}
	return tokens
}
