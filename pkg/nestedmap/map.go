package nestedmap

import (
	"fmt"
	"maps"
	"reflect"
)

// Absent is returned by Size when no inner map exists for an outer key.
const Absent = -1

// Map is a two-level map keyed by an outer and an inner key.
//
// The zero value is an empty map ready to use. Methods need a non-nil
// receiver; the package functions Flatten and Equal accept nil.
type Map[K1, K2 comparable, V any] struct {
	outer map[K1]map[K2]V
}

// RemapFunc computes a new value for an inner key. It receives the current
// value and whether one is stored. Returning keep=false removes the entry.
type RemapFunc[K2 comparable, V any] func(key K2, value V, present bool) (newValue V, keep bool)

// New creates an empty map.
func New[K1, K2 comparable, V any]() *Map[K1, K2, V] {
	return &Map[K1, K2, V]{
		outer: make(map[K1]map[K2]V),
	}
}

// Get retrieves the value stored under (key1, key2).
func (m *Map[K1, K2, V]) Get(key1 K1, key2 K2) (V, bool) {
	inner, ok := m.outer[key1]
	if !ok {
		var zero V
		return zero, false
	}
	val, ok := inner[key2]
	return val, ok
}

// Put stores value under (key1, key2), creating the inner map for key1 if
// needed, and returns the stored value.
func (m *Map[K1, K2, V]) Put(key1 K1, key2 K2, value V) (V, error) {
	if isNil(key1) {
		var zero V
		return zero, fmt.Errorf("%w: outer key", ErrNilKey)
	}
	if isNil(key2) {
		var zero V
		return zero, fmt.Errorf("%w: inner key", ErrNilKey)
	}

	if m.outer == nil {
		m.outer = make(map[K1]map[K2]V)
	}
	inner, ok := m.outer[key1]
	if !ok {
		inner = make(map[K2]V)
		m.outer[key1] = inner
	}
	inner[key2] = value
	return value, nil
}

// Modify recomputes the value under (key1, key2) with fn.
//
// If key1 has no inner map, fn is not called, nothing is created and
// Modify reports false. Otherwise fn receives the current value (if any);
// its result is stored and returned, or the entry is removed when fn
// returns keep=false. An inner map emptied this way stays in place.
func (m *Map[K1, K2, V]) Modify(key1 K1, key2 K2, fn RemapFunc[K2, V]) (V, bool, error) {
	var zero V
	if fn == nil {
		return zero, false, fmt.Errorf("%w: remapping function", ErrNilFunc)
	}

	inner, ok := m.outer[key1]
	if !ok {
		return zero, false, nil
	}

	current, present := inner[key2]
	next, keep := fn(key2, current, present)
	if !keep {
		delete(inner, key2)
		return zero, false, nil
	}
	inner[key2] = next
	return next, true, nil
}

// NestedMap returns a copy of the inner map for key1. An unknown key1
// yields an empty, non-nil map.
func (m *Map[K1, K2, V]) NestedMap(key1 K1) map[K2]V {
	inner, ok := m.outer[key1]
	if !ok {
		return make(map[K2]V)
	}
	return maps.Clone(inner)
}

// Size returns the number of entries under key1, or Absent if key1 has
// never been inserted.
func (m *Map[K1, K2, V]) Size(key1 K1) int {
	inner, ok := m.outer[key1]
	if !ok {
		return Absent
	}
	return len(inner)
}

// ContainsKey reports whether key1 owns an inner map.
func (m *Map[K1, K2, V]) ContainsKey(key1 K1) bool {
	_, ok := m.outer[key1]
	return ok
}

// Contains reports whether a value is stored under (key1, key2), even if
// that value is the zero value.
func (m *Map[K1, K2, V]) Contains(key1 K1, key2 K2) bool {
	_, ok := m.Get(key1, key2)
	return ok
}

// Len returns the number of outer keys.
func (m *Map[K1, K2, V]) Len() int {
	return len(m.outer)
}

// Count returns the total number of values across all inner maps.
func (m *Map[K1, K2, V]) Count() int {
	count := 0
	for _, inner := range m.outer {
		count += len(inner)
	}
	return count
}

// String formats the map like the underlying map[K1]map[K2]V.
func (m *Map[K1, K2, V]) String() string {
	if m.outer == nil {
		return "map[]"
	}
	return fmt.Sprint(m.outer)
}

// Equal reports whether a and b hold the same outer keys, each with an
// equal inner map. A nil map equals an empty one.
func Equal[K1, K2, V comparable](a, b *Map[K1, K2, V]) bool {
	return maps.EqualFunc(outerOf(a), outerOf(b), func(x, y map[K2]V) bool {
		return maps.Equal(x, y)
	})
}

func outerOf[K1, K2 comparable, V any](m *Map[K1, K2, V]) map[K1]map[K2]V {
	if m == nil {
		return nil
	}
	return m.outer
}

// isNil reports whether key is a nil interface, pointer or channel.
func isNil(key any) bool {
	if key == nil {
		return true
	}
	v := reflect.ValueOf(key)
	switch v.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
