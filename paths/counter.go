// SPDX-License-Identifier: MIT
//
// File: counter.go
// Role: Graph-bound query front-end with a finished-result cache.
//
// The per-query memo of CountPaths is never shared: a node's count depends
// on the target. What Counter caches is the final answer of a (from, to)
// segment, which is safe to reuse because the graph never changes.

package paths

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathcount/core"
)

// DefaultCacheSize is the segment cache capacity used when no
// WithCacheSize option is given.
const DefaultCacheSize = 1024

// Counter answers path queries against one graph. It is safe for concurrent
// use.
type Counter struct {
	graph       *core.Graph
	cache       *lru.Cache[segment, uint64] // nil when caching is disabled
	logger      *zap.Logger
	concurrency int

	hits   atomic.Uint64
	misses atomic.Uint64
}

// CounterStats is a snapshot of cache activity.
type CounterStats struct {
	Hits    uint64
	Misses  uint64
	Entries int
}

// CounterOption configures a Counter.
type CounterOption func(*counterConfig)

type counterConfig struct {
	cacheSize   int
	logger      *zap.Logger
	concurrency int
}

// WithCacheSize sets the segment cache capacity; 0 disables caching.
// Panics if n < 0.
func WithCacheSize(n int) CounterOption {
	if n < 0 {
		panic("paths: WithCacheSize(n<0)")
	}
	return func(c *counterConfig) { c.cacheSize = n }
}

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(l *zap.Logger) CounterOption {
	return func(c *counterConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSegmentConcurrency bounds parallel segment counting for waypoint
// queries. Panics if n < 1.
func WithSegmentConcurrency(n int) CounterOption {
	if n < 1 {
		panic("paths: WithSegmentConcurrency(n<1)")
	}
	return func(c *counterConfig) { c.concurrency = n }
}

// NewCounter binds a Counter to g.
//
// Errors:
//   - ErrGraphNil if g is nil.
func NewCounter(g *core.Graph, opts ...CounterOption) (*Counter, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	cfg := counterConfig{
		cacheSize:   DefaultCacheSize,
		logger:      zap.NewNop(),
		concurrency: 1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Counter{
		graph:       g,
		logger:      cfg.logger.With(zap.String("component", "paths.counter")),
		concurrency: cfg.concurrency,
	}
	if cfg.cacheSize > 0 {
		cache, err := lru.New[segment, uint64](cfg.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("paths: NewCounter: %w", err)
		}
		c.cache = cache
	}

	c.logger.Debug("counter ready",
		zap.Int("keys", g.Len()),
		zap.Int("nodes", g.NodeCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.Int("cache_size", cfg.cacheSize),
		zap.Int("concurrency", cfg.concurrency),
	)

	return c, nil
}

// Graph returns the bound graph.
func (c *Counter) Graph() *core.Graph {
	return c.graph
}

// Count is CountPaths through the segment cache.
func (c *Counter) Count(ctx context.Context, from, to core.Node) (uint64, error) {
	start := time.Now()
	n, err := c.segment(ctx, from, to)
	c.logQuery("count", start, n, err, zap.Stringer("from", from), zap.Stringer("to", to))

	return n, err
}

// CountThrough is CountPathsThrough through the segment cache.
func (c *Counter) CountThrough(ctx context.Context, waypoints []core.Node) (uint64, error) {
	start := time.Now()
	n, err := countThrough(ctx, waypoints, c.concurrency, c.segment)
	c.logQuery("through", start, n, err, zap.Stringers("waypoints", waypoints))

	return n, err
}

// CountVisiting is CountPathsVisiting through the segment cache.
func (c *Counter) CountVisiting(ctx context.Context, from, to core.Node, via []core.Node) (uint64, error) {
	start := time.Now()
	n, err := countVisiting(ctx, from, to, via, c.concurrency, c.segment)
	c.logQuery("visiting", start, n, err,
		zap.Stringer("from", from), zap.Stringer("to", to), zap.Stringers("via", via))

	return n, err
}

// Stats reports cache hits, misses and current entries.
func (c *Counter) Stats() CounterStats {
	s := CounterStats{Hits: c.hits.Load(), Misses: c.misses.Load()}
	if c.cache != nil {
		s.Entries = c.cache.Len()
	}

	return s
}

// segment is the cached segmentFunc. Errors are never cached.
func (c *Counter) segment(ctx context.Context, from, to core.Node) (uint64, error) {
	key := segment{from: from, to: to}
	if c.cache != nil {
		if n, ok := c.cache.Get(key); ok {
			c.hits.Add(1)
			return n, nil
		}
	}
	c.misses.Add(1)

	n, err := countPaths(ctx, c.graph, from, to)
	if err != nil {
		return 0, err
	}
	if c.cache != nil {
		c.cache.Add(key, n)
	}

	return n, nil
}

func (c *Counter) logQuery(kind string, start time.Time, n uint64, err error, fields ...zap.Field) {
	fields = append(fields,
		zap.String("query", kind),
		zap.Duration("elapsed", time.Since(start)),
	)
	if err != nil {
		c.logger.Warn("query failed", append(fields, zap.Error(err))...)
		return
	}
	c.logger.Debug("query done", append(fields, zap.Uint64("count", n))...)
}
