// Package logging assembles the structured slog loggers used by textfilter.
//
// It owns the console and JSON handlers, level parsing, and output plumbing,
// and provides a no-op logger for tests and wiring code that cannot fail.
// Diagnostics go to stderr (and optionally a file) so stdout carries only the
// filtered result.
package logging
