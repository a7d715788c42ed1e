package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	// Latency buckets in milliseconds
	latencyBuckets = []float64{
		1, 5, 10, 25,
		50, 100, 250,
		500, 1000, 2500,
	}

	DecisionsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "clickguard_decisions_total",
			Help: "Total number of click decisions by verdict and reason",
		},
		[]string{"verdict", "reason"},
	)

	DecisionLatency = promauto.With(registerer).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "clickguard_decision_latency_ms",
			Help:    "Time spent in the tracking pipeline in milliseconds",
			Buckets: latencyBuckets,
		},
	)

	EnforcementTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "clickguard_enforcement_total",
			Help: "Total number of processed block actions by result status",
		},
		[]string{"status"},
	)

	EnforcementAttempts = promauto.With(registerer).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "clickguard_enforcement_attempts",
			Help:    "External block attempts per action",
			Buckets: []float64{1, 2, 3, 4, 5, 8},
		},
	)

	ReputationLookups = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "clickguard_reputation_lookups_total",
			Help: "IP reputation lookups by provider and outcome",
		},
		[]string{"provider", "status"},
	)

	WebsocketConnections = promauto.With(registerer).NewGauge(
		prometheus.GaugeOpts{
			Name: "clickguard_websocket_connections",
			Help: "Number of open websocket connections",
		},
	)
)

type MetricsConfig struct {
	EnableProcess bool
}

func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{EnableProcess: true}
}

func Initialize(cfg MetricsConfig) {
	if cfg.EnableProcess {
		registry.MustRegister(
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry
}

// Registry exposes the private registry for handlers and tests.
func Registry() *prometheus.Registry {
	return registry
}
