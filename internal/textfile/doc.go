// Package textfile reads input documents for the textfilter CLI.
//
// Failures come back as *ReadError values carrying a human-readable reason,
// one per failure class (missing file, overlong path, invalid path, I/O
// failure), so the caller can print the reason without inspecting errno
// values itself.
//
// Errno classification uses golang.org/x/sys/unix, so the package builds on
// Unix platforms only.
package textfile
