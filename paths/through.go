// SPDX-License-Identifier: MIT
//
// File: through.go
// Role: Ordered waypoint counting.

package paths

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pathcount/core"
)

// CountPathsThrough returns the number of walks that visit waypoints[0],
// waypoints[1], ... in that order. It is the product of
// CountPaths(waypoints[i], waypoints[i+1]) over consecutive pairs; with
// exactly two waypoints it equals CountPaths.
//
// Every segment is counted (in parallel under WithConcurrency) before the
// product is formed, so errors such as a reachable cycle surface even when
// another segment is infeasible.
//
// Errors:
//   - ErrGraphNil, ErrTooFewWaypoints.
//   - Any CountPaths error, wrapped with the failing segment.
//   - ErrCountOverflow if the product exceeds uint64.
func CountPathsThrough(g *core.Graph, waypoints []core.Node, opts ...Option) (uint64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	o := resolveOptions(opts)

	return countThrough(o.Ctx, waypoints, o.Concurrency, graphSegments(g))
}

func countThrough(ctx context.Context, waypoints []core.Node, concurrency int, count segmentFunc) (uint64, error) {
	if len(waypoints) < 2 {
		return 0, fmt.Errorf("%w: got %d", ErrTooFewWaypoints, len(waypoints))
	}

	segs := make([]segment, len(waypoints)-1)
	for i := range segs {
		segs[i] = segment{from: waypoints[i], to: waypoints[i+1]}
	}

	counts, err := countSegments(ctx, segs, concurrency, count)
	if err != nil {
		return 0, err
	}

	return product(counts)
}
