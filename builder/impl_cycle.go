// SPDX-License-Identifier: MIT
// Package: csrgraph/builder
//
// impl_cycle.go — Cycle(n) constructor.
//
// Contract:
//   • n ≥ MinCycleNodes (else ErrTooFewVertices).
//   • Emits edges i—(i+1)%n for i=0..n-1, relative to the block base.

package builder

import "fmt"

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		base := el.AddVertices(n)
		for i := 0; i < n; i++ {
			el.AddEdge(base+i, base+(i+1)%n, cfg.weight())
		}

		return nil
	}
}
