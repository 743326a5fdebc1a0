// Package pipeline applies the word filters selected by a filter option string.
//
// Stages always run in the order vowel-in-middle, short words, words with t,
// whatever order the option letters were typed in. Each stage consumes the
// previous stage's output and unselected stages are skipped. A stage that
// faults aborts the run and its partial result is discarded.
package pipeline
