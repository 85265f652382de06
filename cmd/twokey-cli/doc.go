// Package main provides the entry point for twokey-cli.
//
// The CLI hosts one in-memory two-level map per process and drives it:
//
//   - Interactively, through a REPL with history and completion
//   - From a script file or stdin, with optional keep-going and progress
//   - With config and version helpers
//
// Usage:
//
//	twokey-cli [global flags] [command]
//	twokey-cli run seed.tk --keep-going
//	echo "put a b c" | twokey-cli -o json run -
package main
