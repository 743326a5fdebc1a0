package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// minWordLength is the shortest word FilterShortWords keeps.
const minWordLength = 3

// Filter is the word-level filter component consumed by the pipeline.
type Filter interface {
	SanitizeText(text string) []string
	FilterVowelInMiddle(words []string) []string
	FilterShortWords(words []string) []string
	FilterWordsWithT(words []string) []string
}

type defaultFilter struct{}

// NewFilter returns the standard Filter implementation.
func NewFilter() Filter {
	return defaultFilter{}
}

func (defaultFilter) SanitizeText(text string) []string { return SanitizeText(text) }

func (defaultFilter) FilterVowelInMiddle(words []string) []string { return FilterVowelInMiddle(words) }

func (defaultFilter) FilterShortWords(words []string) []string { return FilterShortWords(words) }

func (defaultFilter) FilterWordsWithT(words []string) []string { return FilterWordsWithT(words) }

// FilterVowelInMiddle removes words whose middle rune is a vowel. Words with an
// even length are removed when either of the two middle runes is a vowel.
func FilterVowelInMiddle(words []string) []string {
	return keep(words, func(word string) bool { return !HasVowelInMiddle(word) })
}

// FilterShortWords keeps words of at least three runes.
func FilterShortWords(words []string) []string {
	return keep(words, func(word string) bool {
		return utf8.RuneCountInString(word) >= minWordLength
	})
}

// FilterWordsWithT keeps words that contain no 't' or 'T'. Letters that only
// decompose to a t, such as U+1E97, are kept.
func FilterWordsWithT(words []string) []string {
	lower := cases.Lower(language.Und)
	return keep(words, func(word string) bool {
		return !strings.ContainsRune(lower.String(word), 't')
	})
}

// HasVowelInMiddle reports whether the middle rune of word is a vowel. For an
// even length both runes around the centre are checked. The empty word has no
// middle and never matches.
func HasVowelInMiddle(word string) bool {
	runes := []rune(word)
	n := len(runes)
	if n == 0 {
		return false
	}
	mid := n / 2
	if n%2 == 0 {
		return isVowel(runes[mid-1]) || isVowel(runes[mid])
	}
	return isVowel(runes[mid])
}

func isVowel(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	default:
		return false
	}
}

func keep(words []string, pred func(string) bool) []string {
	out := make([]string, 0, len(words))
	for _, word := range words {
		if pred(word) {
			out = append(out, word)
		}
	}
	return out
}
