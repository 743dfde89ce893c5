// SPDX-License-Identifier: MIT
// Package: csrgraph/csr
//
// contract.go — merging vertices into super-vertices.

package csr

import (
	"fmt"
)

const (
	methodContract      = "Contract"
	methodCompactLabels = "CompactLabels"
)

// Contract merges vertices into super-vertices: vertex u becomes labels[u].
// The new vertex count is 1 + max(labels); labels that no vertex uses become
// isolated super-vertices (see CompactLabels).
//
// A half-edge u→v survives iff labels[u] != labels[v]. Survivors are
// relabeled to super-vertex endpoints and keep their Weight and EdgeID, so
// EdgeIDs still index the original edge table after any number of rounds.
// Half-edges inside one super-vertex, including self-loops, are dropped.
//
// Parallel edges are kept: two original edges joining the same pair of
// super-vertices stay two half-edge pairs. Callers that want the lightest
// one must reduce EdgesFrom themselves (or use LightestEdgeFrom).
//
// Within a super-vertex, survivors appear in the order of their source
// vertex and then their position in its range, so the identity labeling
// leaves a loop-free graph unchanged.
//
// Panics with ErrLabelCount if len(labels) != NumVertices(), and with
// ErrNegativeLabel on a negative label.
//
// Complexity: O(n + m) time, O(n' + m') memory for the new tables.
func (g *Graph[W]) Contract(labels []int) {
	n := g.NumVertices()
	if len(labels) != n {
		panic(fmt.Errorf("%s: %d labels for %d vertices: %w", methodContract, len(labels), n, ErrLabelCount))
	}

	super := 0
	for u, l := range labels {
		if l < 0 {
			panic(fmt.Errorf("%s: labels[%d]=%d: %w", methodContract, u, l, ErrNegativeLabel))
		}
		super = max(super, l+1)
	}

	offsets, half := g.offsets, g.half
	g.offsets, g.half = scatter(super, func(emit func(int, HalfEdge[W])) {
		for u := 0; u < n; u++ {
			su := labels[u]
			for _, h := range half[offsets[u]:offsets[u+1]] {
				if sv := labels[h.To]; sv != su {
					emit(su, HalfEdge[W]{To: sv, Weight: h.Weight, EdgeID: h.EdgeID})
				}
			}
		}
	})
}

// CompactLabels renumbers labels to 0..k-1 in order of first appearance and
// returns the dense labeling together with k. Contracting with the result
// yields exactly k super-vertices.
//
// Panics with ErrNegativeLabel on a negative label.
func CompactLabels(labels []int) ([]int, int) {
	dense := make([]int, len(labels))
	remap := make(map[int]int)
	for i, l := range labels {
		if l < 0 {
			panic(fmt.Errorf("%s: labels[%d]=%d: %w", methodCompactLabels, i, l, ErrNegativeLabel))
		}
		d, ok := remap[l]
		if !ok {
			d = len(remap)
			remap[l] = d
		}
		dense[i] = d
	}

	return dense, len(remap)
}
