// SPDX-License-Identifier: MIT

// Package mst computes minimum spanning trees and forests over the current
// view of a csr.Graph.
//
// Algorithms:
//
//   - Boruvka: rounds of "every super-vertex picks its lightest outgoing
//     edge", followed by csr.Graph.Contract on a private clone. The per-vertex
//     scan runs in parallel (golang.org/x/sync/errgroup); rounds are logged
//     through a zerolog.Logger (WithLogger, silent by default).
//   - Kruskal: stable sort of the current edges plus union-find.
//   - Prim: lazy heap-based growth from a root vertex.
//
// All three order edges by (Weight, edge id), a strict total order, so on a
// given graph they select the same tree even when weights tie.
//
// Results:
//
//	Edges are reported as they were given to csr.FromList (lower endpoint
//	first, ID = original edge id), sorted by ID, together with the total
//	weight. Parallel edges are allowed and self-loops are never selected.
//	Contractions already applied to the input graph are respected: the tree
//	spans the current super-vertices. The input graph is never modified.
//
// Errors:
//
//   - ErrInvalidGraph   – nil graph.
//   - ErrDisconnected   – no vertices, or more than one component without
//     WithForest.
//   - ErrRootOutOfRange – Prim root outside [0, NumVertices()).
//   - ErrUnknownMethod  – Compute with an unsupported Method.
//   - context errors    – Boruvka observes ctx between and inside rounds.
//
// Complexity:
//
//   - Boruvka: O((n + m) log n) total, O(log n) rounds.
//   - Kruskal: O(m log m + m α(n)).
//   - Prim:    O(m log m).
package mst
