// Package repl provides interactive and scripted command execution for
// twokey-cli.
//
// This package implements the Read-Eval-Print Loop:
//
//   - tokenize.go: shell-like splitting with quotes and '#' comments
//   - engine.go: command table and dispatch onto the map service
//   - repl.go: the interactive loop
//   - script.go: batch execution with --keep-going semantics
//   - completer.go: prefix completion for commands and modify operations
//   - history.go: bounded command history persisted to a file
//
// Commands may be abbreviated to any unique prefix.
package repl
