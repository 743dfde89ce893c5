// SPDX-License-Identifier: MIT
// Package: csrgraph/csr
//
// query.go — read-only accessors over the current CSR view.
//
// Slices returned here are borrowed views into the Graph's tables. They are
// valid until the next Rebuild or Contract and must not be modified.

package csr

import (
	"cmp"
	"slices"
)

const (
	methodEdgesFrom = "EdgesFrom"
	methodDegree    = "Degree"
	methodLightest  = "LightestEdgeFrom"
)

// NumVertices returns the number of vertices in the current view.
func (g *Graph[W]) NumVertices() int {
	return len(g.offsets) - 1
}

// NumEdges returns the number of undirected edges in the current view.
func (g *Graph[W]) NumEdges() int {
	return len(g.half) / 2
}

// NumOriginalEdges returns the size of the original edge table.
func (g *Graph[W]) NumOriginalEdges() int {
	return len(g.original)
}

// EdgesFrom returns the half-edges leaving u. The view is capped, so an
// append on it reallocates instead of overwriting the next vertex's range.
// Panics with ErrVertexOutOfRange unless 0 <= u < NumVertices().
func (g *Graph[W]) EdgesFrom(u int) []HalfEdge[W] {
	if u < 0 || u >= g.NumVertices() {
		vertexPanic(methodEdgesFrom, u, g.NumVertices())
	}
	start, end := g.offsets[u], g.offsets[u+1]

	return g.half[start:end:end]
}

// Degree returns the number of half-edges leaving u; a self-loop counts twice.
// Panics with ErrVertexOutOfRange unless 0 <= u < NumVertices().
func (g *Graph[W]) Degree(u int) int {
	if u < 0 || u >= g.NumVertices() {
		vertexPanic(methodDegree, u, g.NumVertices())
	}

	return g.offsets[u+1] - g.offsets[u]
}

// OriginalEdge returns the edge recorded under id at construction.
// ok is false when id is outside the original edge table.
func (g *Graph[W]) OriginalEdge(id int) (e Edge[W], ok bool) {
	if id < 0 || id >= len(g.original) {
		return e, false
	}

	return g.original[id], true
}

// Offsets returns the offset table (length NumVertices()+1).
func (g *Graph[W]) Offsets() []int {
	return g.offsets
}

// HalfEdges returns the whole half-edge table.
func (g *Graph[W]) HalfEdges() []HalfEdge[W] {
	return g.half
}

// AllEdges lists the original edge table with the lower endpoint first and
// ID set to the original edge id. It ignores contractions and rebuilds.
func (g *Graph[W]) AllEdges() []LabeledEdge[W] {
	out := make([]LabeledEdge[W], len(g.original))
	for id, e := range g.original {
		u, v := e.U, e.V
		if v < u {
			u, v = v, u
		}
		out[id] = LabeledEdge[W]{U: u, V: v, Weight: e.Weight, ID: id}
	}

	return out
}

// CurrentEdges lists every undirected edge of the current view once, with
// the lower current endpoint first and ID set to the half-edge's EdgeID.
// Edges come out grouped by lower endpoint, in range order.
func (g *Graph[W]) CurrentEdges() []LabeledEdge[W] {
	out := make([]LabeledEdge[W], 0, g.NumEdges())
	for u := 0; u < g.NumVertices(); u++ {
		// Both halves of a self-loop sit in u's range; keep every second one.
		loopHalf := false
		for _, h := range g.half[g.offsets[u]:g.offsets[u+1]] {
			switch {
			case u < h.To:
				out = append(out, LabeledEdge[W]{U: u, V: h.To, Weight: h.Weight, ID: h.EdgeID})
			case u == h.To:
				if !loopHalf {
					out = append(out, LabeledEdge[W]{U: u, V: u, Weight: h.Weight, ID: h.EdgeID})
				}
				loopHalf = !loopHalf
			}
		}
	}

	return out
}

// LightestEdgeFrom returns the half-edge leaving u with the smallest
// (Weight, EdgeID). Self-loops never leave u and are ignored. ok is false
// when u has no such edge.
// Panics with ErrVertexOutOfRange unless 0 <= u < NumVertices().
func (g *Graph[W]) LightestEdgeFrom(u int) (best HalfEdge[W], ok bool) {
	if u < 0 || u >= g.NumVertices() {
		vertexPanic(methodLightest, u, g.NumVertices())
	}
	for _, h := range g.half[g.offsets[u]:g.offsets[u+1]] {
		if h.To == u {
			continue
		}
		if !ok || lighter(h, best) {
			best, ok = h, true
		}
	}

	return best, ok
}

// lighter orders half-edges by weight, then by edge id. Edge ids are unique
// per original edge, which makes the order total across parallel edges.
func lighter[W cmp.Ordered](a, b HalfEdge[W]) bool {
	if c := cmp.Compare(a.Weight, b.Weight); c != 0 {
		return c < 0
	}

	return a.EdgeID < b.EdgeID
}

// Clone returns a deep copy of g.
func (g *Graph[W]) Clone() *Graph[W] {
	return &Graph[W]{
		offsets:  slices.Clone(g.offsets),
		half:     slices.Clone(g.half),
		original: slices.Clone(g.original),
	}
}
