package lexicon

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Clean prepares raw text for splitting.
// - Drops every rune that is not a letter, digit or apostrophe (whitespace included)
// - Lowercases what remains
func Clean(text string) string {
	if text == "" {
		return ""
	}

	var builder strings.Builder
	builder.Grow(len(text))
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' {
			builder.WriteRune(r)
		}
	}

	// cases.Caser is stateful, so each call gets its own.
	return cases.Lower(language.Und).String(builder.String())
}
