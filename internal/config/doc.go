// Package config loads, normalizes, and validates textfilter configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours the TEXTFILTER_LOG_LEVEL and TEXTFILTER_LOG_FORMAT
// environment fallbacks. Configuration only shapes presentation (logging and
// output extras); it never changes which filters run.
package config
