// SPDX-License-Identifier: MIT
// Package: csrgraph/csr
//
// validate.go — structural self-check.

package csr

import (
	"cmp"
	"fmt"
)

const methodValidate = "Validate"

// halfKey identifies a directed half-edge for the symmetry check.
type halfKey[W cmp.Ordered] struct {
	from, to, id int
	weight       W
}

// Validate checks the structural invariants of g:
//
//   - offsets starts at 0, never decreases and ends at len(HalfEdges());
//   - the half-edge table has even length;
//   - every To is a vertex of the current view;
//   - every EdgeID indexes the original edge table, if g has one;
//   - every half-edge u→v has a twin v→u with equal Weight and EdgeID
//     (self-loop halves pair up inside u's range).
//
// The first violation is returned wrapped with ErrCorrupt; nil means sound.
// NaN weights never match their twin and are reported as asymmetric.
//
// Complexity: O(n + m) time, O(m) memory.
func (g *Graph[W]) Validate() error {
	if len(g.offsets) == 0 {
		return fmt.Errorf("%s: empty offset table: %w", methodValidate, ErrCorrupt)
	}
	if g.offsets[0] != 0 {
		return fmt.Errorf("%s: offsets[0]=%d: %w", methodValidate, g.offsets[0], ErrCorrupt)
	}
	n := g.NumVertices()
	for u := 0; u < n; u++ {
		if g.offsets[u] > g.offsets[u+1] {
			return fmt.Errorf("%s: offsets[%d]=%d > offsets[%d]=%d: %w",
				methodValidate, u, g.offsets[u], u+1, g.offsets[u+1], ErrCorrupt)
		}
	}
	if g.offsets[n] != len(g.half) {
		return fmt.Errorf("%s: offsets[%d]=%d, %d half-edges: %w",
			methodValidate, n, g.offsets[n], len(g.half), ErrCorrupt)
	}
	if len(g.half)%2 != 0 {
		return fmt.Errorf("%s: odd half-edge count %d: %w", methodValidate, len(g.half), ErrCorrupt)
	}

	count := make(map[halfKey[W]]int, len(g.half))
	for u := 0; u < n; u++ {
		for _, h := range g.half[g.offsets[u]:g.offsets[u+1]] {
			if h.To < 0 || h.To >= n {
				return fmt.Errorf("%s: half-edge %d→%d leaves the vertex range: %w",
					methodValidate, u, h.To, ErrCorrupt)
			}
			if len(g.original) > 0 && (h.EdgeID < 0 || h.EdgeID >= len(g.original)) {
				return fmt.Errorf("%s: half-edge %d→%d has unknown edge id %d: %w",
					methodValidate, u, h.To, h.EdgeID, ErrCorrupt)
			}
			count[halfKey[W]{from: u, to: h.To, id: h.EdgeID, weight: h.Weight}]++
		}
	}
	for k, c := range count {
		if k.from == k.to {
			if c%2 != 0 {
				return fmt.Errorf("%s: self-loop at %d (edge %d) has an odd half count: %w",
					methodValidate, k.from, k.id, ErrCorrupt)
			}
			continue
		}
		twin := halfKey[W]{from: k.to, to: k.from, id: k.id, weight: k.weight}
		if count[twin] != c {
			return fmt.Errorf("%s: half-edge %d→%d (edge %d) has no matching twin: %w",
				methodValidate, k.from, k.to, k.id, ErrCorrupt)
		}
	}

	return nil
}
