package nestedmap

import (
	"iter"
	"maps"
)

// Entry pairs an outer key with a copy of its inner map.
type Entry[K1, K2 comparable, V any] struct {
	Key   K1
	Value map[K2]V
}

// Entries returns the outer-level view: one entry per outer key.
// Order is unspecified.
func (m *Map[K1, K2, V]) Entries() []Entry[K1, K2, V] {
	entries := make([]Entry[K1, K2, V], 0, len(m.outer))
	for key1, inner := range m.outer {
		entries = append(entries, Entry[K1, K2, V]{
			Key:   key1,
			Value: maps.Clone(inner),
		})
	}
	return entries
}

// All returns an iterator over outer keys and copies of their inner maps.
func (m *Map[K1, K2, V]) All() iter.Seq2[K1, map[K2]V] {
	return func(yield func(K1, map[K2]V) bool) {
		for key1, inner := range m.outer {
			if !yield(key1, maps.Clone(inner)) {
				return
			}
		}
	}
}

// Keys returns all outer keys.
func (m *Map[K1, K2, V]) Keys() []K1 {
	keys := make([]K1, 0, len(m.outer))
	for key1 := range m.outer {
		keys = append(keys, key1)
	}
	return keys
}

// Range calls fn for every stored (key1, key2, value).
//
// The callback returns false to stop iteration. fn must not modify m.
func (m *Map[K1, K2, V]) Range(fn func(key1 K1, key2 K2, value V) bool) {
	for key1, inner := range m.outer {
		for key2, value := range inner {
			if !fn(key1, key2, value) {
				return
			}
		}
	}
}
