// SPDX-License-Identifier: MIT

// Package core provides the immutable directed Graph and the Node identifier
// that every other pathcount package works on.
//
// A Graph maps each Node to an ordered list of successors (its outgoing
// edges). It is built once, from a list of Adjacency records, and is
// read-only afterwards, so a single *Graph may be shared by any number of
// concurrent readers without locking.
//
// Model:
//
//   - Node is a comparable value type wrapping an immutable text identifier.
//     Two nodes are equal exactly when their names are equal, which makes Node
//     a valid map key.
//   - Keys keep the order of their first appearance, so Nodes() and any
//     traversal seeded from it are deterministic.
//   - A node that appears only as a successor is part of the graph but has no
//     outgoing edges. It is never an error to ask for its successors.
//   - Duplicate keys: the last Adjacency for a key wins; the key keeps the
//     position of its first appearance.
//   - Parallel edges (the same successor listed twice) are kept. Each one is a
//     distinct edge for path counting.
//
// Methods:
//
//	NewGraph(adjs ...Adjacency) (*Graph, error) // O(V + E)
//	Successors(n Node) []Node            // O(d), returns a copy
//	OutDegree(n Node) int                // O(1)
//	IsKey(n Node) bool                   // O(1)
//	HasNode(n Node) bool                 // O(1), keys and successor-only nodes
//	Nodes() []Node                       // O(V), keys in first-insertion order
//	Len() / NodeCount() / EdgeCount()    // O(1)
//	AdjacencyList() map[string][]string  // O(V + E), plain-text snapshot
//	Equal(other *Graph) bool             // O(V + E)
//
// Errors:
//
//	ErrEmptyNode – an Adjacency or successor carries the zero Node.
package core
