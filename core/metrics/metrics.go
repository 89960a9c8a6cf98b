package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "school_admin"

// Reconciliation metrics.
var (
	ReconcileRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reconcile",
		Name:      "runs_total",
		Help:      "Total number of reconciliation runs by mode (dry_run, apply) and result (success, error).",
	}, []string{"mode", "result"})

	ReconcileIssuesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reconcile",
		Name:      "issues_total",
		Help:      "Total number of missing records and orphaned files found, by pass and disk.",
	}, []string{"pass", "disk"})

	ReconcileDiskFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reconcile",
		Name:      "disk_failures_total",
		Help:      "Total number of disks that could not be reconciled.",
	}, []string{"pass", "disk"})

	ReconcileDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "reconcile",
		Name:      "duration_seconds",
		Help:      "Duration of a full reconciliation run.",
		Buckets:   []float64{0.1, 0.5, 1, 5, 10, 30, 60, 300, 900},
	})
)

// Translation metrics.
var (
	TranslationRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "translation",
		Name:      "requests_total",
		Help:      "Total number of text translations by result (cache_hit, translated, failed, skipped).",
	}, []string{"result"})

	TranslationBackendDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "translation",
		Name:      "backend_duration_seconds",
		Help:      "Latency of calls to the translation backend.",
		Buckets:   prometheus.DefBuckets,
	})
)

// Cache metrics.
var (
	CacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "cache",
		Name:      "hits_total",
		Help:      "Total number of cache hits by driver.",
	}, []string{"driver"})

	CacheMissesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "cache",
		Name:      "misses_total",
		Help:      "Total number of cache misses by driver.",
	}, []string{"driver"})
)
