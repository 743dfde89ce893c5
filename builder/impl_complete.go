// SPDX-License-Identifier: MIT
// Package: csrgraph/builder
//
// impl_complete.go — Complete(n) constructor.
//
// Contract:
//   • n ≥ MinCompleteNodes (else ErrTooFewVertices).
//   • Emits i—j for i<j, i ascending then j ascending.

package builder

import "fmt"

// Complete returns a Constructor that builds the complete graph K_n.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}
		base := el.AddVertices(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				el.AddEdge(base+i, base+j, cfg.weight())
			}
		}

		return nil
	}
}
