// SPDX-License-Identifier: MIT
//
// File: cycle.go
// Role: Whole-graph cycle check.

package paths

import "github.com/katalvlaran/pathcount/core"

// DetectCycle reports the first directed cycle found when walking the graph
// from each key node in insertion order. The cycle is closed (its first node
// is repeated at the end). An acyclic graph yields (nil, nil).
//
// Counting queries only fail on cycles they can reach; DetectCycle is the
// up-front check for the whole graph.
//
// Complexity: Time O(V + E), Memory O(V).
func DetectCycle(g *core.Graph) ([]core.Node, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	state := make(map[core.Node]int, g.NodeCount())
	for _, root := range g.Nodes() {
		if state[root] != White {
			continue
		}

		state[root] = Gray
		stack := []*frame{{node: root, succ: g.Successors(root)}}
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if top.next == len(top.succ) {
				state[top.node] = Black
				stack = stack[:len(stack)-1]
				continue
			}

			next := top.succ[top.next]
			top.next++
			switch state[next] {
			case Gray:
				return cycleFrom(stack, next).Cycle, nil
			case White:
				state[next] = Gray
				stack = append(stack, &frame{node: next, succ: g.Successors(next)})
			}
		}
	}

	return nil, nil
}
