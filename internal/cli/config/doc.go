// Package config provides CLI configuration for twokey.
//
// This package defines CLI-specific configuration:
//
//   - cliconfig.go: CLIConfig struct (~/.twokey/cli.yaml)
//   - loader.go: loading, merging and validation
//
// Values are merged by confloader with priority
// flag > TWOKEY_* env > file > default.
package config
