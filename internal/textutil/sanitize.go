package textutil

import "strings"

// wordDelimiters lists every rune that separates words in SanitizeText.
const wordDelimiters = " .,;:!?'()\n\r"

// SanitizeText splits text on the delimiter set and discards empty tokens.
// Punctuation outside the set (hyphens, double quotes, tabs) stays inside the
// returned words. Order is preserved.
func SanitizeText(text string) []string {
	words := strings.FieldsFunc(text, isWordDelimiter)
	if words == nil {
		return []string{}
	}
	return words
}

func isWordDelimiter(r rune) bool {
	return strings.ContainsRune(wordDelimiters, r)
}
