// SPDX-License-Identifier: MIT
// Package: csrgraph/builder
//
// impl_grid.go — Grid(rows, cols) constructor.
//
// Contract:
//   • rows, cols ≥ MinGridDim (else ErrTooFewVertices).
//   • Vertex (r,c) is base + r*cols + c (row-major).
//   • For each (r,c) in row-major order emit Right then Bottom if present.

package builder

import "fmt"

// Grid returns a Constructor that builds a rows×cols 4-neighborhood grid.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		base := el.AddVertices(rows * cols)
		at := func(r, c int) int { return base + r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					el.AddEdge(at(r, c), at(r, c+1), cfg.weight())
				}
				if r+1 < rows {
					el.AddEdge(at(r, c), at(r+1, c), cfg.weight())
				}
			}
		}

		return nil
	}
}
