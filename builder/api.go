// SPDX-License-Identifier: MIT
// Package: csrgraph/builder
//
// api.go — public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildEdges(opts, cons...). Resolves cfg, runs cons in
//     order over one EdgeList.
//   - Constructors append a fresh block of vertices, so composing them yields
//     a disjoint union (handy for forests and multi-component fixtures).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical
//     edge lists.

package builder

import (
	"fmt"

	"github.com/katalvlaran/csrgraph/csr"
)

// EdgeList accumulates vertices and edges while constructors run.
type EdgeList struct {
	n     int
	edges []csr.Edge[float64]
}

// AddVertices reserves k new vertices and returns the index of the first.
func (el *EdgeList) AddVertices(k int) int {
	base := el.n
	el.n += k

	return base
}

// AddEdge appends the undirected edge u—v with weight w.
func (el *EdgeList) AddEdge(u, v int, w float64) {
	el.edges = append(el.edges, csr.Edge[float64]{U: u, V: v, Weight: w})
}

// NumVertices returns the number of vertices reserved so far.
func (el *EdgeList) NumVertices() int { return el.n }

// Edges returns the edges appended so far, in emission order.
func (el *EdgeList) Edges() []csr.Edge[float64] { return el.edges }

// Constructor appends one topology to el using the resolved builderConfig.
// Constructors validate their parameters first and return sentinel errors;
// they never panic.
type Constructor func(el *EdgeList, cfg builderConfig) error

// BuildEdges resolves opts and applies cons in order. It returns the edge
// list and the total vertex count, which can exceed 1 + the largest endpoint
// when a constructor leaves isolated vertices.
//
// Errors are wrapped as "BuildEdges: %w"; branch with errors.Is.
func BuildEdges(opts []BuilderOption, cons ...Constructor) ([]csr.Edge[float64], int, error) {
	cfg := newBuilderConfig(opts...)
	el := &EdgeList{}
	for i, fn := range cons {
		if fn == nil {
			return nil, 0, fmt.Errorf("%s: nil constructor at index %d: %w", methodBuildEdges, i, ErrConstructFailed)
		}
		if err := fn(el, cfg); err != nil {
			return nil, 0, fmt.Errorf("%s: %w", methodBuildEdges, err)
		}
	}

	return el.edges, el.n, nil
}

// BuildGraph is BuildEdges followed by csr.FromListN, so isolated vertices
// are kept.
func BuildGraph(opts []BuilderOption, cons ...Constructor) (*csr.Graph[float64], error) {
	edges, n, err := BuildEdges(opts, cons...)
	if err != nil {
		return nil, err
	}

	return csr.FromListN(n, edges), nil
}
