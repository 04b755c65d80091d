// Package logger provides structured logging for tokrand.
//
//   - logger.go: slog-backed Logger with JSON and text output
//   - redact.go: masking of token and entropy values
//   - observer.go: entropy.Observer that logs provider decisions
//
// Logs go to stderr so they never mix with tokens printed on stdout.
package logger
