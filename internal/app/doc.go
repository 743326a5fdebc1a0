// Package app runs one textfilter invocation end to end.
//
// Run validates the arguments, reads the file, sanitizes the text, applies the
// selected filters and prints the result, returning the process exit status
// instead of exiting. All collaborators are supplied by the caller, which lets
// tests drive the whole flow with fakes and an in-memory writer.
package app
