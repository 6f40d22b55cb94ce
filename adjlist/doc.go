// SPDX-License-Identifier: MIT

// Package adjlist parses the line-oriented adjacency-list text format into a
// core.Graph.
//
// Format:
//
//	<node>: <succ1> <succ2> ...
//	<node>: <succ1> ...
//
// One line per node with outgoing edges. The first colon separates the node
// name from its successors; successors are separated by any run of
// whitespace. A node with no line of its own is terminal. Blank lines are
// ignored, so input ending in a newline parses cleanly.
//
// Errors:
//
//	ErrMalformedLine  – a non-blank line has no colon
//	ErrEmptyNodeName  – nothing but whitespace before the colon
//
// Both are reported inside a *ParseError carrying the 1-based line number.
// Parsing is a pure function of its input.
package adjlist
