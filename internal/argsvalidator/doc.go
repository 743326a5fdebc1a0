// Package argsvalidator checks the raw positional arguments of the textfilter
// CLI before any file access happens.
//
// Rules are evaluated independently and every failing rule contributes one
// FieldError, in rule order, so callers can surface all problems at once.
package argsvalidator
