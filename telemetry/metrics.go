// Package telemetry exposes solver activity as Prometheus metrics and sets up
// OpenTelemetry tracing for batch runs.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/bitsearch/bfs"
	"github.com/katalvlaran/bitsearch/dfs"
	"github.com/katalvlaran/bitsearch/state"
)

// Metrics groups the solver collectors. All of them are safe for concurrent
// use, so one Metrics may serve every worker of a batch.
type Metrics struct {
	// Runs counts finished instances by kind and outcome ("ok" or "error").
	Runs *prometheus.CounterVec

	// Duration observes instance wall time by kind.
	Duration *prometheus.HistogramVec

	// Enqueued and Expanded count breadth-first frontier traffic.
	Enqueued prometheus.Counter
	Expanded prometheus.Counter

	// CacheHits and CacheMisses count memoized counter lookups.
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter
}

// NewMetrics registers the collectors on reg.
// It panics if they are already registered there, as promauto does.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bitsearch_runs_total",
			Help: "Solved instances by kind and outcome",
		}, []string{"kind", "outcome"}),
		Duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bitsearch_run_duration_seconds",
			Help:    "Instance solve time in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}, []string{"kind"}),
		Enqueued: f.NewCounter(prometheus.CounterOpts{
			Name: "bitsearch_bfs_enqueued_total",
			Help: "States pushed onto the breadth-first frontier",
		}),
		Expanded: f.NewCounter(prometheus.CounterOpts{
			Name: "bitsearch_bfs_expanded_total",
			Help: "States popped from the breadth-first frontier",
		}),
		CacheHits: f.NewCounter(prometheus.CounterOpts{
			Name: "bitsearch_dfs_cache_hits_total",
			Help: "Path counts answered from the (node, mask) cache",
		}),
		CacheMisses: f.NewCounter(prometheus.CounterOpts{
			Name: "bitsearch_dfs_cache_misses_total",
			Help: "Path counts computed because no cached value existed",
		}),
	}
}

// BFSOptions returns frontier hooks feeding Enqueued and Expanded.
func (m *Metrics) BFSOptions() []bfs.Option {
	return []bfs.Option{
		bfs.WithOnEnqueue(func(state.State, int) { m.Enqueued.Inc() }),
		bfs.WithOnDequeue(func(state.State, int) { m.Expanded.Inc() }),
	}
}

// DFSOptions returns cache hooks feeding CacheHits and CacheMisses.
func (m *Metrics) DFSOptions() []dfs.Option {
	return []dfs.Option{
		dfs.WithOnCacheHit(func(int, state.State, uint64) { m.CacheHits.Inc() }),
		dfs.WithOnCacheMiss(func(int, state.State) { m.CacheMisses.Inc() }),
	}
}

// ObserveRun records one finished instance of the given kind.
func (m *Metrics) ObserveRun(kind string, elapsed time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.Runs.WithLabelValues(kind, outcome).Inc()
	m.Duration.WithLabelValues(kind).Observe(elapsed.Seconds())
}
