// Package metrics exposes Prometheus collectors for word-ladder searches
// and adjacency cache traffic.
//
// A nil *Metrics is valid and records nothing, so callers can pass it
// through unconditionally.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every metric name.
const Namespace = "wordlink"

// Metrics groups the collectors. Build it with New.
type Metrics struct {
	searches    *prometheus.CounterVec
	duration    prometheus.Histogram
	expanded    prometheus.Histogram
	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter
}

// New registers the collectors on reg. A nil reg uses a private registry,
// which is convenient for tests that only read values back.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	f := promauto.With(reg)

	return &Metrics{
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "searches_total",
			Help:      "Completed searches by outcome.",
		}, []string{"outcome"}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "search_duration_seconds",
			Help:      "Wall time spent in one search.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		expanded: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "walks_expanded",
			Help:      "Walks dequeued and expanded per search.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
		cacheHits: f.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "cache_hits_total",
			Help:      "Adjacency lookups served from the cache.",
		}),
		cacheMisses: f.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "cache_misses_total",
			Help:      "Adjacency lookups that computed neighbors.",
		}),
	}
}

// ObserveSearch records one finished search.
func (m *Metrics) ObserveSearch(outcome string, elapsed time.Duration, expanded int) {
	if m == nil {
		return
	}
	m.searches.WithLabelValues(outcome).Inc()
	m.duration.Observe(elapsed.Seconds())
	m.expanded.Observe(float64(expanded))
}

// CacheHit counts a lookup served from the adjacency cache.
func (m *Metrics) CacheHit() {
	if m == nil {
		return
	}
	m.cacheHits.Inc()
}

// CacheMiss counts a lookup that computed neighbors.
func (m *Metrics) CacheMiss() {
	if m == nil {
		return
	}
	m.cacheMisses.Inc()
}
