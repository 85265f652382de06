// Package nestedmap provides a two-level composite-key map.
//
// A Map associates an outer key and an inner key with a value. It is
// equivalent to a map[K1]map[K2]V with helpers that treat the pair of keys
// as a single logical key:
//
//   - Lazy inner maps: an inner map is created on the first Put under an outer key
//   - Remapping: Modify recomputes one entry in place, or removes it
//   - Views: NestedMap, Entries and All return copies, never internal state
//   - Flattening: Flatten combines both keys into a single-level map
//
// Usage:
//
//	m := nestedmap.New[string, int, string]()
//	m.Put("Hello", 1, "World")
//	v, ok := m.Get("Hello", 1)
//
// Missing entries are reported with the comma-ok form, so a stored zero
// value is never confused with a miss.
//
// Thread Safety:
//
// A Map is not safe for concurrent use. Callers that share a Map across
// goroutines must provide their own locking.
package nestedmap
