// Package confloader provides configuration loading mechanism.
//
// This package implements a configuration loader on top of koanf:
//
//   - loader.go: Loader merging defaults, YAML file, environment and overrides
//   - provider.go: koanf provider for dotted-key maps (defaults and flags)
//   - watcher.go: fsnotify-based watcher for the configuration file
//
// Priority (highest to lowest):
//
//  1. Command-line flags
//  2. Environment variables (TWOKEY_ prefix)
//  3. Configuration file
//  4. Default values
package confloader
