// Package main hosts the textfilter CLI entrypoint.
//
// The Cobra root command takes a file path and a filter option string,
// resolves configuration and structured logging, and hands the positional
// arguments to internal/app. The exit status computed by the app is turned
// into a real process exit only here, in main.
package main
