package metric

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

// Namespace prefixes every twokey metric name.
const Namespace = "twokey"

// Operation results used as the "result" label.
const (
	ResultHit   = "hit"
	ResultMiss  = "miss"
	ResultOK    = "ok"
	ResultError = "error"
)

// Registry holds all application metrics on a private Prometheus registry.
type Registry struct {
	registry *prometheus.Registry

	OperationsTotal   *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
}

// NewRegistry creates a registry with the operation metrics registered.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		OperationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "operations_total",
				Help:      "Map operations by name and result.",
			},
			[]string{"op", "result"},
		),
		OperationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "operation_duration_seconds",
				Help:      "Map operation latency in seconds.",
				Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
			},
			[]string{"op"},
		),
	}

	r.registry.MustRegister(r.OperationsTotal, r.OperationDuration)
	return r
}

// Register adds an extra collector, such as the map Collector.
func (r *Registry) Register(c prometheus.Collector) error {
	return r.registry.Register(c)
}

// RecordOperation counts one operation with its result.
func (r *Registry) RecordOperation(op, result string) {
	r.OperationsTotal.WithLabelValues(op, result).Inc()
}

// ObserveDuration records how long an operation took.
func (r *Registry) ObserveDuration(op string, d time.Duration) {
	r.OperationDuration.WithLabelValues(op).Observe(d.Seconds())
}

// Gather returns the metric families whose name starts with prefix,
// sorted by name. An empty prefix returns everything.
func (r *Registry) Gather(prefix string) ([]*dto.MetricFamily, error) {
	families, err := r.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}
	if prefix == "" {
		return families, nil
	}
	return slices.DeleteFunc(families, func(mf *dto.MetricFamily) bool {
		return !strings.HasPrefix(mf.GetName(), prefix)
	}), nil
}

// WriteText writes the gathered families in the Prometheus text format.
func (r *Registry) WriteText(w io.Writer, prefix string) error {
	families, err := r.Gather(prefix)
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
