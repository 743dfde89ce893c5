// SPDX-License-Identifier: MIT
// Package: csrgraph/csr
//
// build.go — construction from a plain edge list and bulk rebuilds.

package csr

import (
	"cmp"
	"fmt"
	"slices"
)

const (
	methodFromList = "FromList"
	methodRebuild  = "Rebuild"
)

// FromList builds a Graph from edges. The i-th edge gets EdgeID i and is
// recorded in the original edge table, which later rebuilds and contractions
// never touch.
//
// The vertex count is 1 + the largest endpoint (0 for empty input). Inside a
// vertex range half-edges follow input order; they are not sorted by neighbor.
// A self-loop (u,u) yields two half-edges in u's range.
//
// FromList copies edges; the caller keeps ownership of its slice.
// Panics with ErrVertexOutOfRange if an endpoint is negative.
//
// Complexity: O(n + m) time and memory.
func FromList[W cmp.Ordered](edges []Edge[W]) *Graph[W] {
	if len(edges) == 0 {
		// One offset keeps EdgesFrom a bounds check rather than an empty read.
		return New[W]()
	}

	n := 0
	for i, e := range edges {
		if e.U < 0 || e.V < 0 {
			panic(fmt.Errorf("%s: edge %d (%d,%d): %w", methodFromList, i, e.U, e.V, ErrVertexOutOfRange))
		}
		n = max(n, e.U+1, e.V+1)
	}

	return fromOriginal(n, edges)
}

// FromListN is FromList with an explicit vertex count, so vertices without
// edges (including trailing ones) are part of the graph. Panics with
// ErrVertexOutOfRange if n is negative or an endpoint is outside [0,n).
func FromListN[W cmp.Ordered](n int, edges []Edge[W]) *Graph[W] {
	if n < 0 {
		panic(fmt.Errorf("%s: vertex count %d: %w", methodFromList, n, ErrVertexOutOfRange))
	}
	for i, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			panic(fmt.Errorf("%s: edge %d (%d,%d) not in [0,%d): %w",
				methodFromList, i, e.U, e.V, n, ErrVertexOutOfRange))
		}
	}

	return fromOriginal(n, edges)
}

// Rebuild replaces the offset and half-edge tables with the graph described
// by edges, whose IDs are stored as given (they need not be sequential or
// unique). The vertex count becomes 1 + the largest endpoint, or 0 when edges
// is empty. The original edge table is left untouched.
//
// Panics with ErrVertexOutOfRange if an endpoint is negative.
func (g *Graph[W]) Rebuild(edges []LabeledEdge[W]) {
	n := 0
	for i, e := range edges {
		if e.U < 0 || e.V < 0 {
			panic(fmt.Errorf("%s: edge %d (%d,%d): %w", methodRebuild, i, e.U, e.V, ErrVertexOutOfRange))
		}
		n = max(n, e.U+1, e.V+1)
	}
	g.rebuild(n, edges)
}

// RebuildN is Rebuild with an explicit vertex count, so trailing vertices
// without edges survive. Panics with ErrVertexOutOfRange if n is negative or
// an endpoint is outside [0,n).
func (g *Graph[W]) RebuildN(n int, edges []LabeledEdge[W]) {
	if n < 0 {
		panic(fmt.Errorf("%s: vertex count %d: %w", methodRebuild, n, ErrVertexOutOfRange))
	}
	for i, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			panic(fmt.Errorf("%s: edge %d (%d,%d) not in [0,%d): %w",
				methodRebuild, i, e.U, e.V, n, ErrVertexOutOfRange))
		}
	}
	g.rebuild(n, edges)
}

// fromOriginal records edges as the original table and scatters them with
// positional edge ids.
func fromOriginal[W cmp.Ordered](n int, edges []Edge[W]) *Graph[W] {
	g := &Graph[W]{original: slices.Clone(edges)}
	g.offsets, g.half = scatter(n, func(emit func(int, HalfEdge[W])) {
		for id, e := range g.original {
			emit(e.U, HalfEdge[W]{To: e.V, Weight: e.Weight, EdgeID: id})
			emit(e.V, HalfEdge[W]{To: e.U, Weight: e.Weight, EdgeID: id})
		}
	})

	return g
}

func (g *Graph[W]) rebuild(n int, edges []LabeledEdge[W]) {
	g.offsets, g.half = scatter(n, func(emit func(int, HalfEdge[W])) {
		for _, e := range edges {
			emit(e.U, HalfEdge[W]{To: e.V, Weight: e.Weight, EdgeID: e.ID})
			emit(e.V, HalfEdge[W]{To: e.U, Weight: e.Weight, EdgeID: e.ID})
		}
	})
}
