// SPDX-License-Identifier: MIT
// Package: pathcount/builder
//
// impl_ladder.go - Ladder(k): k diamonds in series.
//
//	s0 ─┬─ a0 ─┬─ s1 ─┬─ a1 ─┬─ s2 …
//	    └─ b0 ─┘      └─ b1 ─┘
//
// Contract:
//   - k ≥ 1 (else ErrTooFewVertices).
//   - Spine node i is idFn(3i); its two arms are idFn(3i+1) and idFn(3i+2).
//   - 2^k walks from idFn(0) to idFn(3k). Every spine node is shared by all
//     walks through it, which is the worst case for unmemoized counting.
//
// Complexity: O(k) nodes and edges.

package builder

import "fmt"

const (
	methodLadder = "Ladder"
	minLadder    = 1
	ladderStride = 3 // spine + two arms
)

// Ladder returns a Constructor that builds k diamonds in series.
func Ladder(k int) Constructor {
	return func(a *assembly, cfg builderConfig) error {
		if k < minLadder {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodLadder, k, minLadder, ErrTooFewVertices)
		}
		for i := 0; i < k; i++ {
			spine := cfg.idFn(ladderStride * i)
			left := cfg.idFn(ladderStride*i + 1)
			right := cfg.idFn(ladderStride*i + 2)
			next := cfg.idFn(ladderStride * (i + 1))

			a.addEdge(spine, left)
			a.addEdge(spine, right)
			a.addEdge(left, next)
			a.addEdge(right, next)
		}

		return nil
	}
}

// LadderEnds returns the first and last spine names of Ladder(k) under the
// given options, so callers need not repeat the ID arithmetic.
func LadderEnds(k int, opts ...BuilderOption) (first, last string) {
	cfg := newBuilderConfig(opts...)

	return cfg.idFn(0), cfg.idFn(ladderStride * k)
}
