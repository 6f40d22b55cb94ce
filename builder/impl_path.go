// SPDX-License-Identifier: MIT
// Package: pathcount/builder
//
// impl_path.go - Path(n): a simple chain.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Nodes idFn(0..n-1); edges (i-1) → i for i=1..n-1 in increasing order.
//   - Exactly one walk from idFn(0) to idFn(n-1).
//
// Complexity: O(n).

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the chain P_n.
func Path(n int) Constructor {
	return func(a *assembly, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			a.addEdge(cfg.idFn(i-1), cfg.idFn(i))
		}

		return nil
	}
}
