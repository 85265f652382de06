// Package service provides domain services for twokey.
//
// MapService owns one string-keyed nestedmap.Map and exposes its
// operations to the CLI. Each call is logged at debug level through the
// context logger and counted in the metric registry. Library errors are
// translated into domain errors with TK-* codes.
//
// Remap operations for Modify are parsed by ParseRemap:
//
//	set VALUE      store VALUE
//	append S       append S (absent reads as "")
//	prepend S      prepend S (absent reads as "")
//	upper, lower   change case of an existing value
//	default VALUE  store VALUE only if nothing is stored
//	delete         remove the entry
package service
