package metric

import "github.com/prometheus/client_golang/prometheus"

// Source reports the size of a two-level map.
type Source interface {
	// Len returns the number of outer keys.
	Len() int
	// Count returns the number of stored values.
	Count() int
}

// Collector exports map size gauges, read from Source on every scrape.
type Collector struct {
	source    Source
	outerKeys *prometheus.Desc
	entries   *prometheus.Desc
}

// NewCollector creates a collector backed by source.
func NewCollector(source Source) *Collector {
	return &Collector{
		source: source,
		outerKeys: prometheus.NewDesc(
			prometheus.BuildFQName(Namespace, "", "outer_keys"),
			"Number of outer keys in the map.",
			nil, nil,
		),
		entries: prometheus.NewDesc(
			prometheus.BuildFQName(Namespace, "", "entries"),
			"Number of values stored across all inner maps.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.outerKeys
	ch <- c.entries
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.outerKeys, prometheus.GaugeValue, float64(c.source.Len()))
	ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(c.source.Count()))
}
