// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Immutable adjacency-list Graph and its read-only queries.
// Determinism:
//   - Keys iterate in first-insertion order; successor lists keep edge order.
// Concurrency:
//   - No locks. The Graph never changes after NewGraph returns, so concurrent
//     readers are safe.

package core

import (
	"fmt"
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Graph is an immutable directed graph stored as an ordered adjacency list.
//
// adj maps every key node to its successor list. members additionally holds
// nodes seen only as successors, so HasNode answers for both.
type Graph struct {
	adj     *orderedmap.OrderedMap[Node, []Node]
	members map[Node]struct{}
	edges   int
}

// NewGraph builds a Graph from adjacency records in the given order.
//
// Implementation:
//   - Stage 1: Validate every From and To node (non-zero).
//   - Stage 2: Insert into the ordered map; a repeated key replaces the
//     previous successor list and keeps its original position.
//   - Stage 3: Record successor-only nodes and the total edge count.
//
// Errors:
//   - ErrEmptyNode (wrapped with the record index) on a zero Node.
//
// Complexity:
//   - Time O(V + E), Space O(V + E).
func NewGraph(adjs ...Adjacency) (*Graph, error) {
	g := &Graph{
		adj:     orderedmap.New[Node, []Node](len(adjs)),
		members: make(map[Node]struct{}, len(adjs)),
	}

	for i, a := range adjs {
		if a.From.IsZero() {
			return nil, fmt.Errorf("core: NewGraph: record %d: %w", i, ErrEmptyNode)
		}
		for _, s := range a.To {
			if s.IsZero() {
				return nil, fmt.Errorf("core: NewGraph: record %d (%s): %w", i, a.From, ErrEmptyNode)
			}
		}

		// Own the slice so later caller mutation cannot leak in.
		succ := slices.Clone(a.To)
		if prev, present := g.adj.Set(a.From, succ); present {
			g.edges -= len(prev)
		}
		g.edges += len(succ)
	}

	// Membership is computed after overwrites so a dropped successor list
	// does not leave stale members behind.
	for pair := g.adj.Oldest(); pair != nil; pair = pair.Next() {
		g.members[pair.Key] = struct{}{}
		for _, s := range pair.Value {
			g.members[s] = struct{}{}
		}
	}

	return g, nil
}

// Successors returns a copy of n's successor list in edge order.
// A node without outgoing edges, or absent from the graph, yields nil.
//
// Complexity: O(d) where d is the out-degree of n.
func (g *Graph) Successors(n Node) []Node {
	if g == nil || g.adj == nil {
		return nil
	}
	succ, ok := g.adj.Get(n)
	if !ok || len(succ) == 0 {
		return nil
	}

	return slices.Clone(succ)
}

// OutDegree returns the number of outgoing edges of n, counting parallel
// edges separately.
func (g *Graph) OutDegree(n Node) int {
	if g == nil || g.adj == nil {
		return 0
	}
	succ, _ := g.adj.Get(n)

	return len(succ)
}

// IsKey reports whether n has its own adjacency record.
func (g *Graph) IsKey(n Node) bool {
	if g == nil || g.adj == nil {
		return false
	}
	_, ok := g.adj.Get(n)

	return ok
}

// HasNode reports whether n appears anywhere in the graph, as a key or as a
// successor.
func (g *Graph) HasNode(n Node) bool {
	if g == nil {
		return false
	}
	_, ok := g.members[n]

	return ok
}

// Nodes returns the key nodes in first-insertion order.
//
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	if g == nil || g.adj == nil {
		return nil
	}
	out := make([]Node, 0, g.adj.Len())
	for pair := g.adj.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}

	return out
}

// Len returns the number of key nodes.
func (g *Graph) Len() int {
	if g == nil || g.adj == nil {
		return 0
	}

	return g.adj.Len()
}

// NodeCount returns the number of distinct nodes, successor-only nodes
// included.
func (g *Graph) NodeCount() int {
	if g == nil {
		return 0
	}

	return len(g.members)
}

// EdgeCount returns the total number of edges.
func (g *Graph) EdgeCount() int {
	if g == nil {
		return 0
	}

	return g.edges
}

// AdjacencyList returns a plain-string snapshot of the graph: key name to
// successor names. Mutating the result does not affect g.
//
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() map[string][]string {
	out := make(map[string][]string, g.Len())
	if g == nil || g.adj == nil {
		return out
	}
	for pair := g.adj.Oldest(); pair != nil; pair = pair.Next() {
		names := make([]string, len(pair.Value))
		for i, s := range pair.Value {
			names[i] = s.name
		}
		out[pair.Key.name] = names
	}

	return out
}

// Equal reports whether g and other hold the same key→successor mapping.
// Key order is ignored; successor order and multiplicity are not.
//
// Complexity: O(V + E).
func (g *Graph) Equal(other *Graph) bool {
	if g.Len() != other.Len() || g.EdgeCount() != other.EdgeCount() {
		return false
	}
	if g.Len() == 0 {
		return true
	}
	for pair := g.adj.Oldest(); pair != nil; pair = pair.Next() {
		theirs, ok := other.adj.Get(pair.Key)
		if !ok || !slices.Equal(pair.Value, theirs) {
			return false
		}
	}

	return true
}
