// SPDX-License-Identifier: MIT

// Package labeling produces the vertex → super-vertex arrays consumed by
// csr.Graph.Contract.
//
// What:
//
//   - DisjointSet: union-find over [0,n) with path halving and union by rank.
//     Labels() turns the current partition into a dense labeling.
//   - ConnectedComponents: BFS over the current view of a csr.Graph.
//
// Every labeling returned here is dense (values 0..k-1, numbered by first
// appearance in vertex order), so contracting with it yields exactly k
// super-vertices and no isolated gaps.
//
// Complexity:
//
//   - DisjointSet: O(α(n)) amortized per Find/Union, O(n) for Labels.
//   - ConnectedComponents: O(n + m).
//
// Concurrency: DisjointSet is not safe for concurrent use; Find mutates.
package labeling
