// Package metric provides Prometheus metrics for the snapshot store.
package metric

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "snapstore"
	subsystem = "snapshot"
)

// Registry holds the snapshot store's metrics.
type Registry struct {
	// SavesTotal counts completed save workers by result (ok, error).
	// A worker that finishes after its caller timed out still counts.
	SavesTotal *prometheus.CounterVec

	// SaveTimeoutsTotal counts saves whose caller gave up waiting.
	SaveTimeoutsTotal prometheus.Counter

	// SaveDuration observes successful serialize+write durations.
	SaveDuration prometheus.Histogram

	// LoadsTotal counts load requests by result (hit, miss).
	LoadsTotal *prometheus.CounterVec

	// LoadFallbacksTotal counts candidates skipped as unreadable during
	// loads.
	LoadFallbacksTotal prometheus.Counter

	// IndexedSnapshots tracks how many snapshots the metadata index
	// currently knows.
	IndexedSnapshots prometheus.Gauge
}

// NewRegistry creates the metric set and registers it with reg. A nil
// registerer yields metrics that collect but are not exported, which keeps
// instrumentation unconditional in the store.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		SavesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "saves_total",
			Help:      "Completed snapshot save workers by result.",
		}, []string{"result"}),

		SaveTimeoutsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "save_timeouts_total",
			Help:      "Snapshot saves whose caller gave up waiting.",
		}),

		SaveDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "save_duration_seconds",
			Help:      "Duration of successful snapshot serialize+write.",
			Buckets:   prometheus.DefBuckets,
		}),

		LoadsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "loads_total",
			Help:      "Snapshot load requests by result.",
		}, []string{"result"}),

		LoadFallbacksTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "load_fallbacks_total",
			Help:      "Snapshot candidates skipped as unreadable during loads.",
		}),

		IndexedSnapshots: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "indexed_snapshots",
			Help:      "Snapshots currently known to the metadata index.",
		}),
	}
}
