// Package metric provides Prometheus metrics for twokey.
//
// This package implements metrics collection and exposition:
//
//   - prometheus.go: private registry, operation counters and latencies
//   - collector.go: gauges read from the live map on each gather
//
// There is no HTTP endpoint. The REPL "stats" command renders the
// gathered families in the Prometheus text format.
package metric
