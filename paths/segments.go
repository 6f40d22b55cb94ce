// SPDX-License-Identifier: MIT
//
// File: segments.go
// Role: Fan-out of independent (from, to) segment counts.

package paths

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pathcount/core"
)

// segment is one independent point-to-point query.
type segment struct {
	from, to core.Node
}

// segmentFunc counts one segment. The package functions count straight on
// the graph; Counter routes through its result cache.
type segmentFunc func(ctx context.Context, from, to core.Node) (uint64, error)

// graphSegments counts segments directly on g, each with a fresh memo.
func graphSegments(g *core.Graph) segmentFunc {
	return func(ctx context.Context, from, to core.Node) (uint64, error) {
		return countPaths(ctx, g, from, to)
	}
}

// countSegments counts every segment and returns the results in input order.
// With concurrency > 1 the segments run on an errgroup bounded by that limit;
// the first failure cancels the rest.
func countSegments(ctx context.Context, segs []segment, concurrency int, count segmentFunc) ([]uint64, error) {
	out := make([]uint64, len(segs))

	if concurrency <= 1 || len(segs) < 2 {
		for i, s := range segs {
			c, err := count(ctx, s.from, s.to)
			if err != nil {
				return nil, fmt.Errorf("paths: segment %s -> %s: %w", s.from, s.to, err)
			}
			out[i] = c
		}

		return out, nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(concurrency)
	for i, s := range segs {
		i, s := i, s // per-iteration copy; go.mod targets go 1.21 loop semantics
		eg.Go(func() error {
			c, err := count(egCtx, s.from, s.to)
			if err != nil {
				return fmt.Errorf("paths: segment %s -> %s: %w", s.from, s.to, err)
			}
			out[i] = c // each goroutine owns one index

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// product multiplies counts. A zero factor makes the result 0 before any
// overflow check, since an infeasible segment empties the whole route.
func product(counts []uint64) (uint64, error) {
	for _, c := range counts {
		if c == 0 {
			return 0, nil
		}
	}
	p := uint64(1)
	var err error
	for _, c := range counts {
		if p, err = mulCount(p, c); err != nil {
			return 0, err
		}
	}

	return p, nil
}
