// SPDX-License-Identifier: MIT

// Package csr stores an undirected weighted graph in Compressed Sparse Row
// form and contracts it, in bulk, into graphs over super-vertices.
//
// What:
//
//   - Graph keeps three tables: an offset table (len n+1), a half-edge table
//     with one (To, Weight, EdgeID) record per direction of every undirected
//     edge, and the original edge table recorded at first construction.
//   - FromList builds the tables by counting sort (degree count, prefix sum,
//     scatter) in O(n + m).
//   - Rebuild replaces the tables from an edge list that already carries edge
//     ids. Contract merges vertices according to a labeling, drops the
//     half-edges that fall inside one super-vertex and keeps every other one
//     with its original EdgeID.
//
// Why:
//
//   - Borůvka-style MST and component coarsening repeatedly scan all
//     neighbors, pick edges and collapse groups of vertices. CSR keeps those
//     scans linear and cache friendly, and the EdgeID carried through every
//     contraction maps the final answer back to the input edges.
//
// Parallel edges:
//
//	Contract never merges parallel edges between two super-vertices. Callers
//	that need a single lightest edge per neighbor must reduce EdgesFrom
//	themselves; LightestEdgeFrom does it for the whole neighborhood.
//
// Errors:
//
//   - Out-of-range vertices and malformed labelings are caller bugs: the
//     methods panic with an error wrapping ErrVertexOutOfRange,
//     ErrLabelCount or ErrNegativeLabel.
//   - OriginalEdge reports a missing id with ok == false.
//   - Validate reports a broken invariant as ErrCorrupt.
//
// Concurrency:
//
//	A Graph is not safe for concurrent mutation. Concurrent readers are fine
//	as long as no Rebuild or Contract runs on the same Graph.
//
// Complexity:
//
//   - FromList, Rebuild, Contract: O(n + m) time and memory.
//   - EdgesFrom, Degree, OriginalEdge: O(1).
//   - AllEdges, CurrentEdges, Validate: O(n + m).
package csr
