// Package output provides output formatting for twokey-cli.
//
// This package handles all CLI output formatting:
//
//   - formatter.go: Formatter interface and factory
//   - table.go: aligned tables, with value truncation unless wide
//   - json.go: JSON output formatting
//   - yaml.go: YAML output formatting
//   - progress.go: script progress on stderr
//
// Table output sorts map rows by key so results are stable between runs.
package output
