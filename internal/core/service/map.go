package service

import (
	"context"
	"errors"
	"io"
	"slices"
	"sync"
	"time"

	"github.com/yndnr/twokey-go/internal/core/domain"
	"github.com/yndnr/twokey-go/internal/telemetry/logger"
	"github.com/yndnr/twokey-go/internal/telemetry/metric"
	"github.com/yndnr/twokey-go/pkg/nestedmap"
)

// Operation names used for logging and metric labels.
const (
	opPut     = "put"
	opGet     = "get"
	opModify  = "modify"
	opNested  = "nested"
	opSize    = "size"
	opFlatten = "flatten"
	opEntries = "entries"
	opKeys    = "keys"
	opRecords = "records"
)

// MapService exposes a string-keyed two-level map with logging and metrics.
//
// The map itself is not safe for concurrent use; MapService serializes
// access with a read/write lock so metric scrapes can run alongside commands.
type MapService struct {
	mu      sync.RWMutex
	m       *nestedmap.Map[string, string, string]
	metrics *metric.Registry
}

// Option configures a MapService.
type Option func(*MapService)

// WithMetrics records operations into r instead of a private registry.
func WithMetrics(r *metric.Registry) Option {
	return func(s *MapService) {
		s.metrics = r
	}
}

// NewMapService creates a service over an empty map and registers the map
// size collector with its metrics registry.
func NewMapService(opts ...Option) (*MapService, error) {
	s := &MapService{
		m: nestedmap.New[string, string, string](),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = metric.NewRegistry()
	}

	if err := s.metrics.Register(metric.NewCollector(s)); err != nil {
		return nil, domain.ErrInternal.WithDetails("register map collector").WithCause(err)
	}
	return s, nil
}

// Put stores value under (outer, inner).
func (s *MapService) Put(ctx context.Context, outer, inner, value string) (domain.Record, error) {
	start := time.Now()
	if err := checkKeys(outer, inner); err != nil {
		s.record(opPut, start, metric.ResultError)
		return domain.Record{}, err
	}

	s.mu.Lock()
	stored, err := s.m.Put(outer, inner, value)
	s.mu.Unlock()
	if err != nil {
		s.record(opPut, start, metric.ResultError)
		return domain.Record{}, translate(err)
	}

	s.record(opPut, start, metric.ResultOK)
	logger.L(ctx).Debug("put",
		"outer", outer,
		"inner", inner,
		"value", logger.RedactEntry(inner, stored),
	)
	return domain.Record{Outer: outer, Inner: inner, Value: stored}, nil
}

// Get returns the value stored under (outer, inner). A miss returns
// ErrOuterKeyNotFound when outer has no inner map and ErrEntryNotFound
// otherwise.
func (s *MapService) Get(ctx context.Context, outer, inner string) (domain.Record, error) {
	start := time.Now()

	s.mu.RLock()
	value, ok := s.m.Get(outer, inner)
	hasOuter := ok || s.m.ContainsKey(outer)
	s.mu.RUnlock()

	if !ok {
		s.record(opGet, start, metric.ResultMiss)
		logger.L(ctx).Debug("get miss", "outer", outer, "inner", inner)
		if !hasOuter {
			return domain.Record{}, domain.ErrOuterKeyNotFound.WithDetails(outer)
		}
		return domain.Record{}, domain.ErrEntryNotFound.WithDetails(outer + " " + inner)
	}

	s.record(opGet, start, metric.ResultHit)
	return domain.Record{Outer: outer, Inner: inner, Value: value}, nil
}

// Modify applies r to the value under (outer, inner). It never creates an
// outer key: an unknown outer key yields ErrOuterKeyNotFound.
func (s *MapService) Modify(ctx context.Context, outer, inner string, r Remap) (domain.Modification, error) {
	start := time.Now()
	if r.fn == nil {
		s.record(opModify, start, metric.ResultError)
		return domain.Modification{}, domain.ErrMissingArgument.WithDetails("remap operation").
			WithCause(nestedmap.ErrNilFunc)
	}

	s.mu.Lock()
	hasOuter := s.m.ContainsKey(outer)
	value, kept, err := s.m.Modify(outer, inner, r.fn)
	s.mu.Unlock()
	if err != nil {
		s.record(opModify, start, metric.ResultError)
		return domain.Modification{}, translate(err)
	}
	if !hasOuter {
		s.record(opModify, start, metric.ResultMiss)
		return domain.Modification{}, domain.ErrOuterKeyNotFound.WithDetails(outer)
	}

	s.record(opModify, start, metric.ResultOK)
	logger.L(ctx).Debug("modify",
		"outer", outer,
		"inner", inner,
		"op", r.Op,
		"removed", !kept,
	)
	return domain.Modification{
		Outer:   outer,
		Inner:   inner,
		Op:      r.Op,
		Value:   value,
		Removed: !kept,
	}, nil
}

// Nested returns a copy of the inner map for outer. Size is
// nestedmap.Absent when outer has never been inserted.
func (s *MapService) Nested(ctx context.Context, outer string) domain.Nested {
	start := time.Now()

	s.mu.RLock()
	entries := s.m.NestedMap(outer)
	size := s.m.Size(outer)
	s.mu.RUnlock()

	s.record(opNested, start, hitOrMiss(size != nestedmap.Absent))
	return domain.Nested{Outer: outer, Size: size, Entries: entries}
}

// Size returns the inner map size for outer, or nestedmap.Absent.
func (s *MapService) Size(ctx context.Context, outer string) int {
	start := time.Now()

	s.mu.RLock()
	size := s.m.Size(outer)
	s.mu.RUnlock()

	s.record(opSize, start, hitOrMiss(size != nestedmap.Absent))
	return size
}

// Flatten joins every composite key with sep and returns the entries
// sorted by joined key. If two pairs join to the same key only one is
// kept, and which one is unspecified.
func (s *MapService) Flatten(ctx context.Context, sep string) ([]domain.FlatEntry, error) {
	start := time.Now()

	s.mu.RLock()
	flat, err := nestedmap.Flatten(s.m, func(outer, inner string) string {
		return outer + sep + inner
	})
	s.mu.RUnlock()
	if err != nil {
		s.record(opFlatten, start, metric.ResultError)
		return nil, translate(err)
	}

	entries := make([]domain.FlatEntry, 0, len(flat))
	for k, v := range flat {
		entries = append(entries, domain.FlatEntry{Key: k, Value: v})
	}
	domain.SortFlat(entries)

	s.record(opFlatten, start, metric.ResultOK)
	logger.L(ctx).Debug("flatten", "separator", sep, "entries", len(entries))
	return entries, nil
}

// Entries returns one Nested per outer key, sorted by outer key.
func (s *MapService) Entries(ctx context.Context) []domain.Nested {
	start := time.Now()

	s.mu.RLock()
	nested := make([]domain.Nested, 0, s.m.Len())
	for outer, inner := range s.m.All() {
		nested = append(nested, domain.Nested{Outer: outer, Size: len(inner), Entries: inner})
	}
	s.mu.RUnlock()

	domain.SortNested(nested)
	s.record(opEntries, start, metric.ResultOK)
	return nested
}

// Keys returns the outer keys in sorted order.
func (s *MapService) Keys(ctx context.Context) []string {
	start := time.Now()

	s.mu.RLock()
	keys := s.m.Keys()
	s.mu.RUnlock()

	slices.Sort(keys)
	s.record(opKeys, start, metric.ResultOK)
	return keys
}

// Records returns every stored value with its composite key, sorted by
// outer then inner key.
func (s *MapService) Records(ctx context.Context) []domain.Record {
	start := time.Now()

	s.mu.RLock()
	records := make([]domain.Record, 0, s.m.Count())
	s.m.Range(func(outer, inner, value string) bool {
		records = append(records, domain.Record{Outer: outer, Inner: inner, Value: value})
		return true
	})
	s.mu.RUnlock()

	domain.SortRecords(records)
	s.record(opRecords, start, metric.ResultOK)
	logger.L(ctx).Debug("records", "count", len(records))
	return records
}

// Len returns the number of outer keys.
func (s *MapService) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Len()
}

// Count returns the number of stored values.
func (s *MapService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Count()
}

// Stats writes the service metrics in the Prometheus text format.
func (s *MapService) Stats(w io.Writer) error {
	if err := s.metrics.WriteText(w, metric.Namespace+"_"); err != nil {
		return domain.ErrInternal.WithDetails("render metrics").WithCause(err)
	}
	return nil
}

func (s *MapService) record(op string, start time.Time, result string) {
	s.metrics.RecordOperation(op, result)
	s.metrics.ObserveDuration(op, time.Since(start))
}

func hitOrMiss(hit bool) string {
	if hit {
		return metric.ResultHit
	}
	return metric.ResultMiss
}

// checkKeys rejects empty keys, which stand in for nil keys on the command line.
func checkKeys(outer, inner string) error {
	if outer == "" {
		return domain.ErrInvalidArgument.WithDetails("outer key is empty").WithCause(nestedmap.ErrNilKey)
	}
	if inner == "" {
		return domain.ErrInvalidArgument.WithDetails("inner key is empty").WithCause(nestedmap.ErrNilKey)
	}
	return nil
}

// translate maps library errors onto domain errors.
func translate(err error) error {
	if errors.Is(err, nestedmap.ErrInvalidArgument) {
		return domain.ErrInvalidArgument.WithDetails(err.Error()).WithCause(err)
	}
	return domain.ErrInternal.WithCause(err)
}
