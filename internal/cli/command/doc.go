// Package command provides CLI command definitions for twokey.
//
// This package defines all CLI commands using urfave/cli/v2:
//
//   - root.go: App, global flags and the Before hook that loads config
//   - repl.go: interactive session (also the default action)
//   - run.go: script execution
//   - config.go: configuration subcommand group
//   - version.go: build information
//   - session.go: per-session map, engine and config watcher setup
//
// Commands follow a consistent pattern of reading the Runtime prepared by
// Before, building a session, and formatting output.
package command
