package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "leaflift_result_cache_hits_total",
		Help: "Result cache hits per analytics view",
	}, []string{"view"})

	CacheMissesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "leaflift_result_cache_misses_total",
		Help: "Result cache misses per analytics view",
	}, []string{"view"})

	SyntheticFallbacksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "leaflift_synthetic_fallbacks_total",
		Help: "Snapshots served by the synthetic generator instead of the live store",
	})

	SnapshotRecords = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "leaflift_snapshot_records",
		Help:    "Usable ride records per snapshot after validation",
		Buckets: prometheus.ExponentialBuckets(50, 4, 6),
	})

	ComputationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "leaflift_computation_duration_seconds",
		Help:    "Wall time of each analytics computation on a cache miss",
		Buckets: prometheus.DefBuckets,
	}, []string{"view"})
)
