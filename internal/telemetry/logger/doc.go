// Package logger provides structured logging for twokey.
//
// This package wraps log/slog:
//
//   - logger.go: Logger interface, configuration and the global default
//   - context.go: Context-aware logging with session IDs
//   - redact.go: Redaction of secret-looking attributes and entries
//
// Features:
//
//   - JSON and text output formats
//   - Log level filtering, adjustable at runtime
//   - Automatic masking of values stored under sensitive keys
package logger
