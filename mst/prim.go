// SPDX-License-Identifier: MIT
// Package: csrgraph/mst
//
// prim.go — lazy Prim over EdgesFrom with a binary heap.

package mst

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/csrgraph/csr"
)

// Prim grows a minimum spanning tree of g's current view from root.
// With WithForest it restarts from the smallest unvisited vertex until every
// vertex is covered.
//
// Steps:
//  1. Mark root visited; push its half-edges.
//  2. Pop the lightest (Weight, EdgeID) half-edge; skip it if its target is
//     visited, otherwise take it, mark the target and push the target's
//     half-edges to unvisited vertices.
//  3. Stop when the heap is empty.
//
// Options used: WithForest. The root argument overrides WithRoot.
func Prim[W csr.Number](g *csr.Graph[W], root int, opts ...Option) ([]csr.LabeledEdge[W], W, error) {
	o := NewOptions(opts...)
	o.Root = root

	return prim(g, o)
}

func prim[W csr.Number](g *csr.Graph[W], o Options) ([]csr.LabeledEdge[W], W, error) {
	if err := checkGraph(methodPrim, g); err != nil {
		return nil, 0, err
	}
	n := g.NumVertices()
	if o.Root < 0 || o.Root >= n {
		return nil, 0, fmt.Errorf("%s: root %d not in [0,%d): %w", methodPrim, o.Root, n, ErrRootOutOfRange)
	}

	var (
		res     = newResolver(g)
		visited = make([]bool, n)
		picked  = make([]csr.LabeledEdge[W], 0, n-1)
		total   W
		pq      = &halfEdgeHeap[W]{}
	)
	visit := func(u int) {
		visited[u] = true
		for _, h := range g.EdgesFrom(u) {
			if !visited[h.To] {
				heap.Push(pq, h)
			}
		}
	}
	grow := func(root int) {
		visit(root)
		for pq.Len() > 0 {
			h := heap.Pop(pq).(csr.HalfEdge[W])
			if visited[h.To] {
				continue
			}
			picked = append(picked, res.edge(h.EdgeID, h.Weight))
			total += h.Weight
			visit(h.To)
		}
	}

	grow(o.Root)
	components := 1
	for s := 0; s < n; s++ {
		if visited[s] {
			continue
		}
		if !o.Forest {
			return nil, 0, fmt.Errorf("%s: %d of %d vertices reachable from %d: %w",
				methodPrim, len(picked)+1, n, o.Root, ErrDisconnected)
		}
		grow(s)
		components++
	}

	return finish(methodPrim, picked, total, components, o)
}

// halfEdgeHeap is a min-heap of half-edges by (Weight, EdgeID).
type halfEdgeHeap[W csr.Number] []csr.HalfEdge[W]

func (pq halfEdgeHeap[W]) Len() int { return len(pq) }

func (pq halfEdgeHeap[W]) Less(i, j int) bool {
	if pq[i].Weight != pq[j].Weight {
		return pq[i].Weight < pq[j].Weight
	}

	return pq[i].EdgeID < pq[j].EdgeID
}

func (pq halfEdgeHeap[W]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *halfEdgeHeap[W]) Push(x any) { *pq = append(*pq, x.(csr.HalfEdge[W])) }

func (pq *halfEdgeHeap[W]) Pop() any {
	old := *pq
	last := old[len(old)-1]
	*pq = old[:len(old)-1]

	return last
}
