package services

import "regexp"

var (
	// noiseRunes matches every rune that is not a word character,
	// whitespace, apostrophe, or question mark.
	noiseRunes = regexp.MustCompile(`[^\w\s'?]`)

	// whitespaceRuns matches runs of consecutive whitespace.
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// normalize strips noise characters from raw text and collapses
// whitespace runs to a single space. It is pure, total, and idempotent.
func normalize(text string) string {
	cleaned := noiseRunes.ReplaceAllString(text, "")
	return whitespaceRuns.ReplaceAllString(cleaned, " ")
}
