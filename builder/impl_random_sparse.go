// SPDX-License-Identifier: MIT
// Package: csrgraph/builder
//
// impl_random_sparse.go — RandomSparse(n, p) constructor.
//
// Model: Erdős–Rényi G(n,p) over unordered pairs {i,j}, i<j.
//
// Contract:
//   • n ≥ MinRandomSparseNodes (else ErrTooFewVertices).
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng required when 0 < p < 1 (else ErrNeedRandSource).
//   • Trial order: i asc, then j asc; one weight draw per accepted edge.

package builder

import "fmt"

// RandomSparse returns a Constructor that samples G(n,p).
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, p float64) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if n < MinRandomSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, MinRandomSparseNodes, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		base := el.AddVertices(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				// p ∈ {0,1} is decided without touching the RNG.
				keep := p == probMax
				if !keep && p > probMin {
					keep = cfg.rng.Float64() < p
				}
				if keep {
					el.AddEdge(base+i, base+j, cfg.weight())
				}
			}
		}

		return nil
	}
}
