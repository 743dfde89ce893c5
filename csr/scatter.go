// SPDX-License-Identifier: MIT
// Package: csrgraph/csr
//
// scatter.go — the counting sort shared by FromList, Rebuild and Contract.
//
// Contract:
//   - The source emits (bucket, half-edge) pairs with bucket in [0,n) and
//     emits exactly the same sequence on every call.
//   - Non-surviving records are filtered by the source itself.
//   - Output order inside a bucket is emission order (stable).
//
// Complexity:
//   - Time: two passes over the source + O(n).
//   - Space: O(n) offsets and cursor, O(m) half-edges.

package csr

import (
	"cmp"
	"slices"
)

// halfEdgeSource emits every half-edge of a new table together with the
// vertex (bucket) whose range it belongs to.
type halfEdgeSource[W cmp.Ordered] func(emit func(bucket int, h HalfEdge[W]))

// scatter builds a fresh offset table of length n+1 and the matching
// half-edge table from src.
func scatter[W cmp.Ordered](n int, src halfEdgeSource[W]) ([]int, []HalfEdge[W]) {
	// 1) Count half-edges per bucket.
	offsets := make([]int, n+1)
	src(func(bucket int, _ HalfEdge[W]) {
		offsets[bucket]++
	})

	// 2) Exclusive prefix sum turns counts into range starts; offsets[n] is
	//    the total because its count is always zero.
	running := 0
	for i, deg := range offsets {
		offsets[i] = running
		running += deg
	}

	// 3) Scatter through a cursor cloned from the range starts.
	cursor := slices.Clone(offsets[:n])
	half := make([]HalfEdge[W], running)
	src(func(bucket int, h HalfEdge[W]) {
		half[cursor[bucket]] = h
		cursor[bucket]++
	})

	return offsets, half
}
