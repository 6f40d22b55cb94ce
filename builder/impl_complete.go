// SPDX-License-Identifier: MIT
// Package: pathcount/builder
//
// impl_complete.go - Complete(n): transitive tournament.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Edge i → j for every i < j, emitted in (i asc, j asc) order.
//   - 2^(n-2) walks from idFn(0) to idFn(n-1): each intermediate node is
//     either on the walk or not.
//
// Complexity: O(n²) edges.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 2
)

// Complete returns a Constructor that builds the acyclic tournament on n nodes.
func Complete(n int) Constructor {
	return func(a *assembly, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			a.addNode(u)
			for j := i + 1; j < n; j++ {
				a.addEdge(u, cfg.idFn(j))
			}
		}

		return nil
	}
}
