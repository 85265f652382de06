package nestedmap

import "fmt"

// Flatten builds a single-level map by combining every (key1, key2) pair
// into one key with combine.
//
// When two pairs combine to the same key the one visited last wins.
// Visitation order follows Go map iteration and is not guaranteed, so
// combiners that collide produce an unspecified winner. A nil m flattens
// to an empty map.
func Flatten[K1, K2 comparable, V any, R comparable](m *Map[K1, K2, V], combine func(K1, K2) R) (map[R]V, error) {
	if combine == nil {
		return nil, fmt.Errorf("%w: combiner", ErrNilFunc)
	}
	if m == nil {
		return make(map[R]V), nil
	}

	result := make(map[R]V, m.Count())
	m.Range(func(key1 K1, key2 K2, value V) bool {
		result[combine(key1, key2)] = value
		return true
	})
	return result, nil
}
