// Package telemetry instruments route resolution with Prometheus
// metrics and OpenTelemetry traces.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/wayfind-dev/wayfind/pkg/routes"
)

// MetricsConfig configures the Prometheus resolution metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "wayfind").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for resolution duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus resolution metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "wayfind",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the Prometheus metrics for route resolution.
type Metrics struct {
	resolutionsTotal   *prometheus.CounterVec
	resolutionDuration prometheus.Histogram
	routesResolved     prometheus.Gauge
	filesScanned       prometheus.Gauge
}

// NewMetrics registers and returns the resolution metrics.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &Metrics{
		resolutionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "resolutions_total",
			Help:        "Total number of route resolutions",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),

		resolutionDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "resolution_duration_seconds",
			Help:        "Route resolution duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		routesResolved: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "routes_resolved",
			Help:        "Number of nodes in the last resolved route tree",
			ConstLabels: config.ConstLabels,
		}),

		filesScanned: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "files_scanned",
			Help:        "Number of file keys in the last scanned enumeration",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// Resolve runs a resolution and records its outcome.
func (m *Metrics) Resolve(src routes.Context, opts routes.Options) (*routes.RouteNode, error) {
	start := time.Now()
	files := len(src.Keys())

	root, err := routes.Resolve(src, opts)

	m.resolutionDuration.Observe(time.Since(start).Seconds())
	m.filesScanned.Set(float64(files))
	if err != nil {
		m.resolutionsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	m.resolutionsTotal.WithLabelValues("ok").Inc()
	m.routesResolved.Set(float64(CountNodes(root)))
	return root, nil
}

// CountNodes returns the number of nodes in a route tree. A nil tree
// counts as zero.
func CountNodes(root *routes.RouteNode) int {
	if root == nil {
		return 0
	}
	count := 1
	for _, child := range root.Children {
		count += CountNodes(child)
	}
	return count
}
