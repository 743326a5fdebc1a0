// Package textutil provides the word-level text processing used by the
// textfilter CLI.
//
// The primary use cases are:
//   - Splitting raw file text into an ordered word list
//   - Dropping words whose middle character is a vowel
//   - Dropping words shorter than three characters
//   - Dropping words that contain the letter t in any case
//
// Every filter returns a new slice and leaves its input untouched, so stages
// can be chained by feeding one result into the next. Lengths and positions
// are measured in runes, not bytes.
package textutil
