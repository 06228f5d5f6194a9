package obsadapters

import (
	"slices"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector implements eventstore.MetricsCollector on top of a
// prometheus.Registerer.
//
// Collectors are created lazily per metric name; the label key set of the
// first observation fixes the label names for that metric, matching how the
// eventstore emits stable label sets per metric.
type PrometheusCollector struct {
	registerer prometheus.Registerer

	mu         sync.Mutex
	histograms map[string]*prometheus.HistogramVec
	counters   map[string]*prometheus.CounterVec
	gauges     map[string]*prometheus.GaugeVec
}

// NewPrometheusCollector creates a PrometheusCollector registering onto the given registerer.
func NewPrometheusCollector(registerer prometheus.Registerer) *PrometheusCollector {
	return &PrometheusCollector{
		registerer: registerer,
		histograms: make(map[string]*prometheus.HistogramVec),
		counters:   make(map[string]*prometheus.CounterVec),
		gauges:     make(map[string]*prometheus.GaugeVec),
	}
}

// RecordDuration observes a duration in seconds on a histogram named after the metric.
func (c *PrometheusCollector) RecordDuration(metric string, duration time.Duration, labels map[string]string) {
	c.mu.Lock()
	histogram, ok := c.histograms[metric]
	if !ok {
		histogram = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metric + "_seconds",
				Help:    "Duration of " + metric + " in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			labelNames(labels),
		)
		c.registerer.MustRegister(histogram)
		c.histograms[metric] = histogram
	}
	c.mu.Unlock()

	histogram.With(labels).Observe(duration.Seconds())
}

// IncrementCounter increments a counter named after the metric.
func (c *PrometheusCollector) IncrementCounter(metric string, labels map[string]string) {
	c.mu.Lock()
	counter, ok := c.counters[metric]
	if !ok {
		counter = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metric + "_total",
				Help: "Total count of " + metric + ".",
			},
			labelNames(labels),
		)
		c.registerer.MustRegister(counter)
		c.counters[metric] = counter
	}
	c.mu.Unlock()

	counter.With(labels).Inc()
}

// RecordValue sets a gauge named after the metric.
func (c *PrometheusCollector) RecordValue(metric string, value float64, labels map[string]string) {
	c.mu.Lock()
	gauge, ok := c.gauges[metric]
	if !ok {
		gauge = prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: metric,
				Help: "Last observed value of " + metric + ".",
			},
			labelNames(labels),
		)
		c.registerer.MustRegister(gauge)
		c.gauges[metric] = gauge
	}
	c.mu.Unlock()

	gauge.With(labels).Set(value)
}

func labelNames(labels map[string]string) []string {
	names := make([]string, 0, len(labels))
	for name := range labels {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}
