// SPDX-License-Identifier: MIT
// Package: pathcount/builder
//
// impl_cycle.go - Cycle(n): directed ring.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices). n == 1 is a self-loop.
//   - Edges i → (i+1) mod n in increasing i.
//
// Complexity: O(n).

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 1
)

// Cycle returns a Constructor that builds the directed ring C_n.
func Cycle(n int) Constructor {
	return func(a *assembly, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			a.addEdge(cfg.idFn(i), cfg.idFn((i+1)%n))
		}

		return nil
	}
}
