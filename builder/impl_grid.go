// SPDX-License-Identifier: MIT
// Package: pathcount/builder
//
// impl_grid.go - Grid(rows, cols): lattice DAG.
//
// Canonical model:
//   - Node IDs use the fixed scheme "r,c" (row-major), not cfg.idFn, so
//     coordinates stay explicit.
//   - Each cell emits Right (r,c+1) then Down (r+1,c) where they exist.
//   - Walks from "0,0" to "rows-1,cols-1": C(rows+cols-2, rows-1).
//
// Contract:
//   - rows ≥ 1, cols ≥ 1 and rows*cols ≥ 2 (else ErrTooFewVertices).
//
// Complexity: O(rows*cols).

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// Grid returns a Constructor that builds a rows×cols lattice DAG.
func Grid(rows, cols int) Constructor {
	return func(a *assembly, _ builderConfig) error {
		if rows < minGridDim || cols < minGridDim || rows*cols < 2 {
			return fmt.Errorf("%s: rows=%d, cols=%d: %w", methodGrid, rows, cols, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				a.addNode(u)
				if c+1 < cols {
					a.addEdge(u, GridID(r, c+1))
				}
				if r+1 < rows {
					a.addEdge(u, GridID(r+1, c))
				}
			}
		}

		return nil
	}
}

// GridID returns the node name of cell (r, c).
func GridID(r, c int) string {
	return fmt.Sprintf(gridIDFmt, r, c)
}
