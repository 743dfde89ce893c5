// SPDX-License-Identifier: MIT
// Package: csrgraph/builder
//
// impl_path.go — Path(n) constructor.
//
// Contract:
//   • n ≥ MinPathNodes (else ErrTooFewVertices).
//   • Emits edges i—i+1 for i=0..n-2.

package builder

import "fmt"

// Path returns a Constructor that builds a simple path P_n.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		base := el.AddVertices(n)
		for i := 0; i+1 < n; i++ {
			el.AddEdge(base+i, base+i+1, cfg.weight())
		}

		return nil
	}
}
