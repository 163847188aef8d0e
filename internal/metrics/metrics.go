package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Resolutions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "evochain_resolutions_total",
		Help: "Total number of evolution chains resolved, labelled by shape.",
	}, []string{"shape"})

	WalksTruncated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "evochain_walks_truncated_total",
		Help: "Total number of resolutions whose walk hit the iteration cap.",
	})

	ConditionFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "evochain_condition_fallbacks_total",
		Help: "Total number of conditions described by their raw trigger token.",
	})

	ImportsEnqueued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "evochain_imports_enqueued_total",
		Help: "Total number of species details placed on the import queue.",
	})

	ImportsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "evochain_imports_dropped_total",
		Help: "Total number of species details rejected due to a full queue.",
	})

	ImportsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "evochain_imports_failed_total",
		Help: "Total number of queued species details the store failed to persist.",
	})

	ResolveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "evochain_resolve_duration_ms",
		Help:    "Queue-to-result resolution latency in milliseconds.",
		Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 25, 50, 100, 250},
	})

	QueueUtilization = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "evochain_queue_utilization_ratio",
		Help: "Current work queue utilization (0–1).",
	})

	ConfigReloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "evochain_config_reloads_total",
		Help: "Total number of config reload attempts, labelled by status.",
	}, []string{"status"})
)
