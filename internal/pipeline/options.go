package pipeline

import "strings"

// Option letters understood by ParseOptions.
const (
	OptionVowelInMiddle = 'v'
	OptionShortWords    = 's'
	OptionWordsWithT    = 't'
)

// Options records which filters a run should apply.
type Options struct {
	VowelInMiddle bool
	ShortWords    bool
	WordsWithT    bool
}

// ParseOptions reads the filter option string. Unknown letters are ignored and
// repeated letters have no extra effect.
func ParseOptions(s string) Options {
	return Options{
		VowelInMiddle: strings.ContainsRune(s, OptionVowelInMiddle),
		ShortWords:    strings.ContainsRune(s, OptionShortWords),
		WordsWithT:    strings.ContainsRune(s, OptionWordsWithT),
	}
}

// Any reports whether at least one filter is selected.
func (o Options) Any() bool {
	return o.VowelInMiddle || o.ShortWords || o.WordsWithT
}

// String returns the selected letters in execution order.
func (o Options) String() string {
	var b strings.Builder
	if o.VowelInMiddle {
		b.WriteRune(OptionVowelInMiddle)
	}
	if o.ShortWords {
		b.WriteRune(OptionShortWords)
	}
	if o.WordsWithT {
		b.WriteRune(OptionWordsWithT)
	}
	return b.String()
}
