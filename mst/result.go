// SPDX-License-Identifier: MIT
// Package: csrgraph/mst
//
// result.go — mapping selected half-edges back to input edges.

package mst

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/csrgraph/csr"
)

// resolver turns an edge id of g's current view into the edge reported to
// the caller. Ids found in the original table report its endpoints; ids
// that are not (graphs assembled with Rebuild only) fall back to the
// endpoints of g's current view.
type resolver[W csr.Number] struct {
	g       *csr.Graph[W]
	current map[int]csr.LabeledEdge[W]
}

func newResolver[W csr.Number](g *csr.Graph[W]) *resolver[W] {
	return &resolver[W]{g: g}
}

// edge reports id with weight w, the weight the algorithm compared.
func (r *resolver[W]) edge(id int, w W) csr.LabeledEdge[W] {
	if e, ok := r.g.OriginalEdge(id); ok {
		u, v := e.U, e.V
		if v < u {
			u, v = v, u
		}

		return csr.LabeledEdge[W]{U: u, V: v, Weight: w, ID: id}
	}
	if r.current == nil {
		r.current = make(map[int]csr.LabeledEdge[W], r.g.NumEdges())
		for _, e := range r.g.CurrentEdges() {
			r.current[e.ID] = e
		}
	}
	e := r.current[id]
	e.Weight = w

	return e
}

// byWeight is the edge order shared by every algorithm here.
func byWeight[W csr.Number](a, b csr.LabeledEdge[W]) int {
	if c := cmp.Compare(a.Weight, b.Weight); c != 0 {
		return c
	}

	return cmp.Compare(a.ID, b.ID)
}

func sortByID[W csr.Number](edges []csr.LabeledEdge[W]) {
	slices.SortFunc(edges, func(a, b csr.LabeledEdge[W]) int {
		if c := cmp.Compare(a.ID, b.ID); c != 0 {
			return c
		}
		if c := cmp.Compare(a.U, b.U); c != 0 {
			return c
		}

		return cmp.Compare(a.V, b.V)
	})
}

// checkGraph applies the checks every method shares.
func checkGraph[W csr.Number](method string, g *csr.Graph[W]) error {
	if g == nil {
		return fmt.Errorf("%s: %w", method, ErrInvalidGraph)
	}
	if g.NumVertices() == 0 {
		return fmt.Errorf("%s: no vertices: %w", method, ErrDisconnected)
	}

	return nil
}

// finish applies the connectivity rule and puts edges in report order.
func finish[W csr.Number](method string, edges []csr.LabeledEdge[W], total W, components int, o Options) ([]csr.LabeledEdge[W], W, error) {
	if components > 1 && !o.Forest {
		return nil, 0, fmt.Errorf("%s: %d components: %w", method, components, ErrDisconnected)
	}
	sortByID(edges)

	return edges, total, nil
}
