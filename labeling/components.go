// SPDX-License-Identifier: MIT
// Package: csrgraph/labeling
//
// components.go — connected components of the current CSR view.

package labeling

import (
	"cmp"

	"github.com/katalvlaran/csrgraph/csr"
)

// ConnectedComponents labels every vertex of g's current view with its
// component, numbered 0..k-1 by smallest vertex, and returns the labeling
// together with k. Isolated vertices form their own components.
// A nil graph yields (nil, 0).
//
// Contracting g with the result collapses each component into one
// super-vertex and leaves no edges.
//
// Time: O(n + m). Memory: O(n) for labels and the queue.
func ConnectedComponents[W cmp.Ordered](g *csr.Graph[W]) ([]int, int) {
	if g == nil {
		return nil, 0
	}
	n := g.NumVertices()
	labels := make([]int, n)
	for i := range labels {
		labels[i] = -1
	}

	k := 0
	queue := make([]int, 0, n)
	for s := 0; s < n; s++ {
		if labels[s] >= 0 {
			continue
		}
		labels[s] = k
		queue = append(queue[:0], s)
		for qi := 0; qi < len(queue); qi++ {
			for _, h := range g.EdgesFrom(queue[qi]) {
				if labels[h.To] < 0 {
					labels[h.To] = k
					queue = append(queue, h.To)
				}
			}
		}
		k++
	}

	return labels, k
}
