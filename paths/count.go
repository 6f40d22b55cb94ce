// SPDX-License-Identifier: MIT
//
// File: count.go
// Role: Memoized point-to-point walk counting.
//
// The walker keeps an explicit stack of frames. A frame owns one node, its
// successor list, a cursor into that list, and the running sum of finished
// successor counts. When the cursor reaches the end, the sum is the node's
// final count: it is memoized, the node turns Black, and the sum is folded
// into the parent frame.
//
// Complexity:
//
//   - Time:   O(V + E) reachable from the start
//   - Memory: O(V) for state, memo and stack

package paths

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pathcount/core"
)

// frame is one pending node on the walker stack.
type frame struct {
	node core.Node
	succ []core.Node
	next int    // index of the next successor to fold in
	sum  uint64 // walks to the target through succ[:next]
}

// pathWalker holds the state of a single CountPaths query. memo is the
// per-query cache and is dropped with the walker.
type pathWalker struct {
	graph *core.Graph
	to    core.Node
	ctx   context.Context
	state map[core.Node]int
	memo  map[core.Node]uint64
	steps int
}

// CountPaths returns the number of distinct walks from `from` to `to`.
//
// The target counts as one walk (the empty one) and its outgoing edges are
// never followed, so CountPaths(g, x, x) == 1. A start absent from g, or a
// target unreachable from it, yields 0.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - *CycleError (errors.Is ErrCycleDetected) if a cycle is reachable from
//     `from` without passing through `to`.
//   - ErrCountOverflow if the count exceeds uint64.
//   - ctx.Err() if the WithContext context is cancelled.
func CountPaths(g *core.Graph, from, to core.Node, opts ...Option) (uint64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	o := resolveOptions(opts)

	return countPaths(o.Ctx, g, from, to)
}

// countPaths runs one query with a fresh memo.
func countPaths(ctx context.Context, g *core.Graph, from, to core.Node) (uint64, error) {
	w := &pathWalker{
		graph: g,
		to:    to,
		ctx:   ctx,
		state: make(map[core.Node]int),
		memo:  make(map[core.Node]uint64),
	}

	return w.count(from)
}

// count drives the stack until the start frame is finished.
func (w *pathWalker) count(from core.Node) (uint64, error) {
	if err := w.ctx.Err(); err != nil {
		return 0, err
	}

	// 1. Base case: the target is one walk; its successors are not examined.
	if from == w.to {
		return 1, nil
	}

	// 2. Seed the stack with the start node.
	w.state[from] = Gray
	stack := []*frame{w.open(from)}

	var err error
	for len(stack) > 0 {
		if err = w.checkCancel(); err != nil {
			return 0, err
		}

		top := stack[len(stack)-1]

		// 3. All successors folded in: finalize, memoize and pop.
		if top.next == len(top.succ) {
			w.memo[top.node] = top.sum
			w.state[top.node] = Black
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				if parent.sum, err = addCount(parent.sum, top.sum); err != nil {
					return 0, fmt.Errorf("paths: at %s: %w", parent.node, err)
				}
			}
			continue
		}

		// 4. Advance to the next successor.
		next := top.succ[top.next]
		top.next++

		switch {
		case next == w.to:
			top.sum, err = addCount(top.sum, 1)
		case w.state[next] == Black:
			top.sum, err = addCount(top.sum, w.memo[next])
		case w.state[next] == Gray:
			return 0, cycleFrom(stack, next)
		default:
			w.state[next] = Gray
			stack = append(stack, w.open(next))
		}
		if err != nil {
			return 0, fmt.Errorf("paths: at %s: %w", top.node, err)
		}
	}

	return w.memo[from], nil
}

// open builds a frame for n. Absent nodes get an empty successor list.
func (w *pathWalker) open(n core.Node) *frame {
	return &frame{node: n, succ: w.graph.Successors(n)}
}

// checkCancel polls the context every cancelCheckInterval steps.
func (w *pathWalker) checkCancel() error {
	w.steps++
	if w.steps%cancelCheckInterval != 0 {
		return nil
	}
	select {
	case <-w.ctx.Done():
		return w.ctx.Err()
	default:
		return nil
	}
}

// cycleFrom extracts the closed cycle that starts at the Gray node `back`
// from the current stack.
func cycleFrom(stack []*frame, back core.Node) *CycleError {
	start := 0
	for i, f := range stack {
		if f.node == back {
			start = i
			break
		}
	}
	cycle := make([]core.Node, 0, len(stack)-start+1)
	for _, f := range stack[start:] {
		cycle = append(cycle, f.node)
	}
	cycle = append(cycle, back)

	return &CycleError{Cycle: cycle}
}
