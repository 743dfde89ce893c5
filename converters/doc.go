// SPDX-License-Identifier: MIT

// Package converters moves graphs between csr.Graph and gonum's graph
// interfaces (gonum.org/v1/gonum/graph), so a CSR view can be handed to
// gonum algorithms (paths, components, centrality) and gonum graphs can be
// loaded into a CSR store for contraction.
//
// gonum simple graphs hold at most one edge per vertex pair and no
// self-loops. ToGonum therefore keeps the lightest of parallel edges and
// skips loops; the edge ids of a CSR view have no gonum counterpart.
package converters
