// Package domain defines the core domain models for twokey.
//
// Domain models are plain value objects without IO dependencies.
// This package contains:
//
//   - Record: one (outer, inner, value) triple as shown to users
//   - Nested: an outer key together with its inner entries
//   - Errors: coded domain errors shared by the service and the CLI
package domain
