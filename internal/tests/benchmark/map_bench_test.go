package benchmark

import (
	"fmt"
	"testing"

	"github.com/yndnr/twokey-go/pkg/nestedmap"
)

// BenchmarkMapPut benchmarks inserts into prefilled maps.
func BenchmarkMapPut(b *testing.B) {
	runWithShapes(b, SmallShapes, func(b *testing.B, s shape) {
		m, _ := prefillMap(b, s)

		b.ResetTimer()
		b.ReportAllocs()

		for i := 0; i < b.N; i++ {
			if _, err := m.Put(fmt.Sprintf("o%d", i%s.outer), fmt.Sprintf("bench-%d", i), "v"); err != nil {
				b.Fatalf("Put failed: %v", err)
			}
		}

		b.StopTimer()
		reportMemory(b, "mem")
	})
}

// BenchmarkMapGet benchmarks lookups of existing entries.
func BenchmarkMapGet(b *testing.B) {
	runWithShapes(b, Shapes, func(b *testing.B, s shape) {
		m, keys := prefillMap(b, s)

		b.ResetTimer()
		b.ReportAllocs()

		for i := 0; i < b.N; i++ {
			k := keys[i%len(keys)]
			if _, ok := m.Get(k.outer, k.inner); !ok {
				b.Fatalf("Get(%q, %q) missed", k.outer, k.inner)
			}
		}
	})
}

// BenchmarkMapModify benchmarks in-place remapping.
func BenchmarkMapModify(b *testing.B) {
	grow := func(_ string, v string, present bool) (string, bool) {
		return v + "x", present
	}

	runWithShapes(b, SmallShapes, func(b *testing.B, s shape) {
		m, keys := prefillMap(b, s)

		b.ResetTimer()
		b.ReportAllocs()

		for i := 0; i < b.N; i++ {
			k := keys[i%len(keys)]
			// Reset the value so it does not grow without bound.
			if i%len(keys) == 0 {
				b.StopTimer()
				for _, k := range keys {
					m.Put(k.outer, k.inner, "v")
				}
				b.StartTimer()
			}
			if _, _, err := m.Modify(k.outer, k.inner, grow); err != nil {
				b.Fatalf("Modify failed: %v", err)
			}
		}
	})
}

// BenchmarkMapFlatten benchmarks flattening whole maps.
func BenchmarkMapFlatten(b *testing.B) {
	combine := func(k1, k2 string) string { return k1 + "-" + k2 }

	runWithShapes(b, Shapes, func(b *testing.B, s shape) {
		m, _ := prefillMap(b, s)

		b.ResetTimer()
		b.ReportAllocs()

		for i := 0; i < b.N; i++ {
			flat, err := nestedmap.Flatten(m, combine)
			if err != nil {
				b.Fatalf("Flatten failed: %v", err)
			}
			if len(flat) != s.outer*s.inner {
				b.Fatalf("Flatten() len = %d, want %d", len(flat), s.outer*s.inner)
			}
		}
	})
}

// BenchmarkMapRange benchmarks full iteration.
func BenchmarkMapRange(b *testing.B) {
	runWithShapes(b, Shapes, func(b *testing.B, s shape) {
		m, _ := prefillMap(b, s)

		b.ResetTimer()
		b.ReportAllocs()

		for i := 0; i < b.N; i++ {
			n := 0
			m.Range(func(string, string, string) bool {
				n++
				return true
			})
			if n != s.outer*s.inner {
				b.Fatalf("Range visited %d, want %d", n, s.outer*s.inner)
			}
		}
	})
}
