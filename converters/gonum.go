// SPDX-License-Identifier: MIT
// Package: csrgraph/converters

package converters

import (
	"math"
	"slices"

	"github.com/katalvlaran/csrgraph/csr"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// ToGonum copies the current view of g into a weighted undirected gonum
// graph. Vertex u becomes node ID int64(u); every vertex is added, isolated
// ones included. Parallel edges collapse to the lightest one and self-loops
// are dropped. Absent edges weigh +Inf. A nil g yields an empty graph.
//
// Complexity: O(n + m) map operations.
func ToGonum[W csr.Number](g *csr.Graph[W]) *simple.WeightedUndirectedGraph {
	dst := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	if g == nil {
		return dst
	}
	for u := 0; u < g.NumVertices(); u++ {
		dst.AddNode(simple.Node(u))
	}
	for _, e := range g.CurrentEdges() {
		if e.U == e.V {
			continue
		}
		w := float64(e.Weight)
		if prev := dst.WeightedEdge(int64(e.U), int64(e.V)); prev != nil && prev.Weight() <= w {
			continue
		}
		dst.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(e.U), T: simple.Node(e.V), W: w})
	}

	return dst
}

// FromGonum loads src into a new csr.Graph. Nodes are re-indexed densely in
// ascending ID order; ids[i] is the gonum ID of vertex i. Edges are emitted
// by (lower index, higher index), so the result is deterministic regardless
// of gonum's iteration order, and edge id k refers to the k-th such pair.
// A nil src yields an empty graph and nil ids.
//
// Complexity: O(n log n + m log d) for the sorts.
func FromGonum(src graph.WeightedUndirected) (*csr.Graph[float64], []int64) {
	if src == nil {
		return csr.New[float64](), nil
	}

	nodes := graph.NodesOf(src.Nodes())
	ids := make([]int64, len(nodes))
	for i, v := range nodes {
		ids[i] = v.ID()
	}
	slices.Sort(ids)
	index := make(map[int64]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	var edges []csr.Edge[float64]
	for i, uid := range ids {
		nbrs := graph.NodesOf(src.From(uid))
		order := make([]int, 0, len(nbrs))
		for _, v := range nbrs {
			if j := index[v.ID()]; j >= i {
				order = append(order, j)
			}
		}
		slices.Sort(order)
		for _, j := range order {
			w, ok := src.Weight(uid, ids[j])
			if !ok {
				continue
			}
			edges = append(edges, csr.Edge[float64]{U: i, V: j, Weight: w})
		}
	}

	return csr.FromListN(len(ids), edges), ids
}
