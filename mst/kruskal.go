// SPDX-License-Identifier: MIT
// Package: csrgraph/mst
//
// kruskal.go — Kruskal's algorithm over the current edge list.

package mst

import (
	"slices"

	"github.com/katalvlaran/csrgraph/csr"
	"github.com/katalvlaran/csrgraph/labeling"
)

// Kruskal returns a minimum spanning tree (or forest, with WithForest) of
// g's current view.
//
// Steps:
//  1. Collect CurrentEdges, drop self-loops.
//  2. Stable sort by (Weight, ID).
//  3. Accept every edge joining two different union-find sets; stop at n-1.
//
// Options used: WithForest.
func Kruskal[W csr.Number](g *csr.Graph[W], opts ...Option) ([]csr.LabeledEdge[W], W, error) {
	return kruskal(g, NewOptions(opts...))
}

func kruskal[W csr.Number](g *csr.Graph[W], o Options) ([]csr.LabeledEdge[W], W, error) {
	if err := checkGraph(methodKruskal, g); err != nil {
		return nil, 0, err
	}

	n := g.NumVertices()
	edges := slices.DeleteFunc(g.CurrentEdges(), func(e csr.LabeledEdge[W]) bool {
		return e.U == e.V
	})
	slices.SortStableFunc(edges, byWeight[W])

	var (
		res    = newResolver(g)
		dsu    = labeling.NewDisjointSet(n)
		picked = make([]csr.LabeledEdge[W], 0, n-1)
		total  W
	)
	for _, e := range edges {
		if !dsu.Union(e.U, e.V) {
			continue
		}
		picked = append(picked, res.edge(e.ID, e.Weight))
		total += e.Weight
		if len(picked) == n-1 {
			break
		}
	}

	return finish(methodKruskal, picked, total, dsu.Count(), o)
}
