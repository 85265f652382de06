package benchmark

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/oklog/ulid/v2"

	"github.com/yndnr/twokey-go/internal/core/service"
	"github.com/yndnr/twokey-go/pkg/nestedmap"
)

// shape is a map layout: outer keys times inner keys per outer key.
type shape struct {
	outer int
	inner int
}

func (s shape) String() string {
	return fmt.Sprintf("outer_%d_inner_%d", s.outer, s.inner)
}

// Shapes covers wide, deep and balanced maps.
var Shapes = []shape{
	{outer: 10, inner: 1000},
	{outer: 100, inner: 100},
	{outer: 1000, inner: 10},
}

// SmallShapes for quick benchmarks.
var SmallShapes = []shape{
	{outer: 10, inner: 10},
	{outer: 100, inner: 10},
}

// key is a composite key used to address prefilled entries.
type key struct {
	outer string
	inner string
}

// newValue returns a unique value.
func newValue() string {
	return strings.ToLower(ulid.Make().String())
}

func keysFor(s shape) []key {
	keys := make([]key, 0, s.outer*s.inner)
	for o := 0; o < s.outer; o++ {
		for i := 0; i < s.inner; i++ {
			keys = append(keys, key{outer: fmt.Sprintf("o%d", o), inner: fmt.Sprintf("i%d", i)})
		}
	}
	return keys
}

// prefillMap fills a map with the given shape.
func prefillMap(b *testing.B, s shape) (*nestedmap.Map[string, string, string], []key) {
	b.Helper()
	m := nestedmap.New[string, string, string]()
	keys := keysFor(s)
	for _, k := range keys {
		if _, err := m.Put(k.outer, k.inner, newValue()); err != nil {
			b.Fatalf("Put failed: %v", err)
		}
	}
	return m, keys
}

// prefillService fills a service with the given shape.
func prefillService(b *testing.B, ctx context.Context, s shape) (*service.MapService, []key) {
	b.Helper()
	svc, err := service.NewMapService()
	if err != nil {
		b.Fatalf("NewMapService failed: %v", err)
	}
	keys := keysFor(s)
	for _, k := range keys {
		if _, err := svc.Put(ctx, k.outer, k.inner, newValue()); err != nil {
			b.Fatalf("Put failed: %v", err)
		}
	}
	return svc, keys
}

// reportMemory reports memory usage.
func reportMemory(b *testing.B, prefix string) {
	var m runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&m)
	b.ReportMetric(float64(m.Alloc)/(1024*1024), prefix+"_MB")
	b.ReportMetric(float64(m.NumGC), prefix+"_GC")
}

// runWithShapes runs a benchmark function for each shape.
func runWithShapes(b *testing.B, shapes []shape, benchFn func(b *testing.B, s shape)) {
	for _, s := range shapes {
		b.Run(s.String(), func(b *testing.B) {
			benchFn(b, s)
		})
	}
}
