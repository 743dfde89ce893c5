// SPDX-License-Identifier: MIT
// Package: csrgraph/builder
//
// impl_bipartite.go — CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   • n1 ≥ MinPartitionSize and n2 ≥ MinPartitionSize (else ErrTooFewVertices).
//   • The block holds the left partition first, then the right one.
//   • Emits every cross pair: left i ascending, then right j ascending.

package builder

import "fmt"

// CompleteBipartite returns a Constructor for K_{n1,n2}.
// Complexity: O(n1·n2).
func CompleteBipartite(n1, n2 int) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if n1 < MinPartitionSize || n2 < MinPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, MinPartitionSize, ErrTooFewVertices)
		}
		left := el.AddVertices(n1)
		right := el.AddVertices(n2)
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				el.AddEdge(left+i, right+j, cfg.weight())
			}
		}

		return nil
	}
}
