// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node identifier, Adjacency record and sentinel errors.

package core

import "errors"

// ErrEmptyNode indicates that an adjacency record references the zero Node.
var ErrEmptyNode = errors.New("core: node name is empty")

// Node identifies a vertex by name. It is a small comparable value: equality
// and hashing are those of the wrapped string, so Node can key a map.
//
// The zero Node has an empty name and is never a member of a Graph.
type Node struct {
	name string
}

// NewNode returns the Node named name. The name is used verbatim.
func NewNode(name string) Node {
	return Node{name: name}
}

// NewNodes converts names to Nodes, preserving order.
func NewNodes(names ...string) []Node {
	out := make([]Node, len(names))
	for i, name := range names {
		out[i] = Node{name: name}
	}

	return out
}

// String returns the node name.
func (n Node) String() string {
	return n.name
}

// IsZero reports whether n is the zero Node.
func (n Node) IsZero() bool {
	return n.name == ""
}

// Adjacency is one line of an adjacency list: a node and its ordered
// successors.
type Adjacency struct {
	// From is the node owning the outgoing edges.
	From Node

	// To lists the direct successors of From in edge order.
	// Repeated entries are parallel edges.
	To []Node
}
