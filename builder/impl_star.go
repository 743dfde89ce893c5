// SPDX-License-Identifier: MIT
// Package: csrgraph/builder
//
// impl_star.go — Star(n) constructor.
//
// Contract:
//   • n ≥ MinStarNodes (else ErrTooFewVertices).
//   • The block's first vertex is the center; emits center—leaf for leaves
//     in ascending order.

package builder

import "fmt"

// Star returns a Constructor that builds a star with one center and n-1 leaves.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		center := el.AddVertices(n)
		for leaf := center + 1; leaf < center+n; leaf++ {
			el.AddEdge(center, leaf, cfg.weight())
		}

		return nil
	}
}
