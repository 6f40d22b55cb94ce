// SPDX-License-Identifier: MIT
//
// File: visiting.go
// Role: Unordered waypoint counting.
//
// Stops are indexed 0 (start), 1..m (waypoints), m+1 (end). Every pair the
// orderings can use is counted once up front, then the orderings are
// enumerated depth-first over that table. An ordering is abandoned as soon as
// one of its legs is 0.
//
// Complexity:
//
//   - m(m+1) segment counts, each O(V+E)
//   - at most m! orderings, each O(m) to multiply out

package paths

import (
	"context"
	"fmt"
	"math/bits"

	"github.com/katalvlaran/pathcount/core"
)

// CountPathsVisiting returns the number of walks from `from` to `to` that
// visit every node of via, in any order. It sums CountPathsThrough over all
// orderings of via placed between from and to. With an empty via it equals
// CountPaths(from, to).
//
// Errors:
//   - ErrGraphNil.
//   - ErrTooManyWaypoints if len(via) > MaxVisitingWaypoints.
//   - ErrDuplicateWaypoint if via repeats a node.
//   - Any CountPaths error, wrapped with the failing segment.
//   - ErrCountOverflow if the sum exceeds uint64.
func CountPathsVisiting(g *core.Graph, from, to core.Node, via []core.Node, opts ...Option) (uint64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	o := resolveOptions(opts)

	return countVisiting(o.Ctx, from, to, via, o.Concurrency, graphSegments(g))
}

func countVisiting(ctx context.Context, from, to core.Node, via []core.Node, concurrency int, count segmentFunc) (uint64, error) {
	if len(via) == 0 {
		return count(ctx, from, to)
	}
	if len(via) > MaxVisitingWaypoints {
		return 0, fmt.Errorf("%w: %d > %d", ErrTooManyWaypoints, len(via), MaxVisitingWaypoints)
	}
	seen := make(map[core.Node]struct{}, len(via))
	for _, v := range via {
		if _, dup := seen[v]; dup {
			return 0, fmt.Errorf("%w: %s", ErrDuplicateWaypoint, v)
		}
		seen[v] = struct{}{}
	}

	m := len(via)
	last := m + 1
	stops := make([]core.Node, 0, m+2)
	stops = append(stops, from)
	stops = append(stops, via...)
	stops = append(stops, to)

	// 1. Collect the legs an ordering can take: start→v, v→w, v→end.
	type leg struct{ i, j int }
	var (
		legs []leg
		segs []segment
	)
	for i := 0; i <= m; i++ {
		for j := 1; j <= last; j++ {
			if i == j || (i == 0 && j == last) {
				continue
			}
			legs = append(legs, leg{i, j})
			segs = append(segs, segment{from: stops[i], to: stops[j]})
		}
	}

	counts, err := countSegments(ctx, segs, concurrency, count)
	if err != nil {
		return 0, err
	}

	table := make([][]uint64, m+2)
	for i := range table {
		table[i] = make([]uint64, m+2)
	}
	for k, l := range legs {
		table[l.i][l.j] = counts[k]
	}

	// 2. Enumerate orderings, skipping any with a zero leg.
	e := &orderEnumerator{table: table, m: m, factors: make([]uint64, 0, last)}
	if err = e.walk(0, 0); err != nil {
		return 0, err
	}

	return e.total, nil
}

// orderEnumerator sums leg products over waypoint orderings.
type orderEnumerator struct {
	table   [][]uint64
	m       int
	factors []uint64 // legs of the ordering being built
	total   uint64
}

// walk extends the current ordering from stop `at`; used is a bitmask over
// waypoint indexes 1..m.
func (e *orderEnumerator) walk(at int, used uint) error {
	if bits.OnesCount(used) == e.m {
		final := e.table[at][e.m+1]
		if final == 0 {
			return nil
		}
		p, err := product(append(e.factors, final))
		if err != nil {
			return err
		}
		e.total, err = addCount(e.total, p)

		return err
	}

	for k := 1; k <= e.m; k++ {
		if used&(1<<k) != 0 || e.table[at][k] == 0 {
			continue
		}
		e.factors = append(e.factors, e.table[at][k])
		if err := e.walk(k, used|1<<k); err != nil {
			return err
		}
		e.factors = e.factors[:len(e.factors)-1]
	}

	return nil
}
