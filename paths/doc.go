// SPDX-License-Identifier: MIT

// Package paths counts directed walks in a core.Graph.
//
// What:
//
//   - CountPaths: number of distinct walks from one node to another. The
//     count for a node is the sum of its successors' counts, with the target
//     counting as exactly one walk. Each node's count is computed once per
//     query and memoized, so the cost is O(V+E) instead of exponential.
//   - CountPathsThrough: walks visiting an ordered list of waypoints, as the
//     product of the consecutive segment counts.
//   - CountPathsVisiting: walks from a start to an end that visit a set of
//     waypoints in any order, summed over all feasible orderings.
//   - DetectCycle: first directed cycle in the graph, if any.
//   - Counter: a graph-bound front-end with an LRU of finished segment
//     results and structured logging.
//
// Traversal uses an explicit stack with White/Gray/Black node states rather
// than recursion, so deep graphs cannot exhaust the goroutine stack. Meeting
// a Gray node means a cycle is reachable before the target, and the query
// fails with a *CycleError instead of looping.
//
// Semantics:
//
//   - CountPaths(g, x, x) == 1 for any x, present or not. The target's own
//     successors are never examined.
//   - A node with no outgoing edges that is not the target contributes 0.
//   - A start node absent from the graph behaves like a terminal node.
//   - Cycles that are unreachable from the start, or only reachable past
//     the target, do not affect the result.
//
// Complexity:
//
//   - CountPaths:          Time O(V+E), Memory O(V)
//   - CountPathsThrough:   Time O(k·(V+E)) for k waypoints
//   - CountPathsVisiting:  Time O(m²·(V+E) + m!) for m intermediate waypoints
//   - DetectCycle:         Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil           graph pointer is nil
//   - ErrCycleDetected      a cycle is reachable before the target (*CycleError)
//   - ErrTooFewWaypoints    fewer than two waypoints
//   - ErrTooManyWaypoints   more than MaxVisitingWaypoints intermediates
//   - ErrDuplicateWaypoint  the same intermediate waypoint listed twice
//   - ErrCountOverflow      the count does not fit in uint64
//   - context errors        cancellation via WithContext
package paths
