// SPDX-License-Identifier: MIT
// Package: csrgraph/csr
//
// types.go — records, sentinel errors and the Graph container.

package csr

import (
	"cmp"
	"errors"
	"fmt"
)

// Sentinel errors. Contract violations are raised with panic(err) where err
// wraps one of these; use errors.Is on the recovered value.
var (
	// ErrVertexOutOfRange indicates a vertex index outside [0, NumVertices()).
	ErrVertexOutOfRange = errors.New("csr: vertex out of range")

	// ErrLabelCount indicates a labeling whose length differs from NumVertices().
	ErrLabelCount = errors.New("csr: label count does not match vertex count")

	// ErrNegativeLabel indicates a negative super-vertex label.
	ErrNegativeLabel = errors.New("csr: negative super-vertex label")

	// ErrCorrupt indicates a broken structural invariant found by Validate.
	ErrCorrupt = errors.New("csr: corrupt graph")
)

// Number is the weight constraint of consumers that add or convert weights.
// The store itself only needs cmp.Ordered.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Edge is an undirected edge as supplied by the caller: endpoints U and V
// and a Weight. Its id is its position in the slice given to FromList.
type Edge[W cmp.Ordered] struct {
	U, V   int
	Weight W
}

// LabeledEdge is an undirected edge that carries an explicit edge id.
// Rebuild consumes it; AllEdges and CurrentEdges produce it.
type LabeledEdge[W cmp.Ordered] struct {
	U, V   int
	Weight W
	ID     int
}

// HalfEdge is one direction of an undirected edge, stored in the range of
// the vertex it leaves. EdgeID indexes the original edge table.
type HalfEdge[W cmp.Ordered] struct {
	To     int
	Weight W
	EdgeID int
}

// Graph is a CSR store for an undirected weighted graph.
//
// The half-edges of vertex u occupy half[offsets[u]:offsets[u+1]].
// The zero value is not ready for use; start from New or FromList.
type Graph[W cmp.Ordered] struct {
	offsets  []int
	half     []HalfEdge[W]
	original []Edge[W]
}

// New returns an empty Graph: zero vertices, zero edges, offsets [0].
func New[W cmp.Ordered]() *Graph[W] {
	return &Graph[W]{offsets: []int{0}}
}

// vertexPanic raises the fail-fast error for an invalid vertex index.
func vertexPanic(method string, u, n int) {
	panic(fmt.Errorf("%s: vertex %d not in [0,%d): %w", method, u, n, ErrVertexOutOfRange))
}
