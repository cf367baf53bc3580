package adjacency

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/wordlink/metrics"
)

// CacheStats is a point-in-time view of cache traffic.
type CacheStats struct {
	Hits   uint64
	Misses uint64
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithCacheMetrics reports hits and misses to m.
func WithCacheMetrics(m *metrics.Metrics) CacheOption {
	return func(c *Cache) {
		c.metrics = m
	}
}

// Cache memoizes a Neighborer per word. Entries are never evicted:
// the lexicon is finite, so the cache is bounded by its size.
//
// Thread Safety:
//
//	Cache is safe for concurrent use. Concurrent misses on the same word are
//	collapsed into one computation; the first stored result wins.
type Cache struct {
	src     Neighborer
	entries sync.Map // string -> []string
	flight  singleflight.Group
	size    atomic.Int64
	hits    atomic.Uint64
	misses  atomic.Uint64
	metrics *metrics.Metrics
}

// NewCache wraps src. It panics if src is nil.
func NewCache(src Neighborer, opts ...CacheOption) *Cache {
	if src == nil {
		panic(ErrNilNeighborer)
	}
	c := &Cache{src: src}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the neighbors of word, computing them on first access.
// The returned slice is shared by every caller and must not be modified.
//
// Every call counts as exactly one hit or one miss. A caller that waits on
// another caller's computation counts as a hit.
func (c *Cache) Get(word string) []string {
	if v, ok := c.entries.Load(word); ok {
		c.hit()
		return v.([]string)
	}

	computed := false
	v, _, _ := c.flight.Do(word, func() (interface{}, error) {
		computed = true
		// another flight may have stored it between Load and Do
		if v, ok := c.entries.Load(word); ok {
			c.hit()
			return v, nil
		}
		c.misses.Add(1)
		c.metrics.CacheMiss()
		actual, loaded := c.entries.LoadOrStore(word, c.src.Neighbors(word))
		if !loaded {
			c.size.Add(1)
		}
		return actual, nil
	})
	if !computed {
		c.hit()
	}
	return v.([]string)
}

func (c *Cache) hit() {
	c.hits.Add(1)
	c.metrics.CacheHit()
}

// Neighbors makes Cache a Neighborer so caches can be layered or swapped for a Model.
func (c *Cache) Neighbors(word string) []string { return c.Get(word) }

// Source returns the Neighborer the cache wraps.
func (c *Cache) Source() Neighborer { return c.src }

// Contains reports whether word has been computed already.
func (c *Cache) Contains(word string) bool {
	_, ok := c.entries.Load(word)
	return ok
}

// Len returns the number of cached words.
func (c *Cache) Len() int { return int(c.size.Load()) }

// Stats returns hit and miss counters.
func (c *Cache) Stats() CacheStats {
	return CacheStats{Hits: c.hits.Load(), Misses: c.misses.Load()}
}
