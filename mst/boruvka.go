// SPDX-License-Identifier: MIT
// Package: csrgraph/mst
//
// boruvka.go — Borůvka's algorithm driven by CSR contraction.
//
// Round structure:
//  1. Every super-vertex finds its lightest outgoing half-edge (parallel).
//  2. Chosen edges are merged with union-find; duplicates (u and v picking
//     the same edge) are rejected by Union.
//  3. The union-find partition becomes a dense labeling and the working
//     clone is contracted with it.
//
// The loop ends when the working graph has no edges left; its vertex count
// is then the number of components.

package mst

import (
	"context"
	"fmt"

	"github.com/katalvlaran/csrgraph/csr"
	"github.com/katalvlaran/csrgraph/labeling"
	"golang.org/x/sync/errgroup"
)

// cancelCheckEvery is how many vertices a scan worker handles between
// context checks.
const cancelCheckEvery = 1024

// Boruvka returns a minimum spanning tree (or forest, with WithForest) of
// g's current view. g is not modified.
//
// Options used: WithForest, WithWorkers, WithLogger.
func Boruvka[W csr.Number](ctx context.Context, g *csr.Graph[W], opts ...Option) ([]csr.LabeledEdge[W], W, error) {
	return boruvka(ctx, g, NewOptions(opts...))
}

func boruvka[W csr.Number](ctx context.Context, g *csr.Graph[W], o Options) ([]csr.LabeledEdge[W], W, error) {
	if err := checkGraph(methodBoruvka, g); err != nil {
		return nil, 0, err
	}

	var (
		res    = newResolver(g)
		work   = g.Clone()
		picked = make([]csr.LabeledEdge[W], 0, g.NumVertices()-1)
		total  W
		round  int
	)
	for work.NumEdges() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, 0, fmt.Errorf("%s: round %d: %w", methodBoruvka, round, err)
		}

		best, has, err := lightestPerVertex(ctx, work, max(1, o.Workers))
		if err != nil {
			return nil, 0, fmt.Errorf("%s: round %d: %w", methodBoruvka, round, err)
		}

		n := work.NumVertices()
		dsu := labeling.NewDisjointSet(n)
		merged := 0
		for u := 0; u < n; u++ {
			if !has[u] {
				continue
			}
			h := best[u]
			if dsu.Union(u, h.To) {
				picked = append(picked, res.edge(h.EdgeID, h.Weight))
				total += h.Weight
				merged++
			}
		}
		// Only self-loops are left; they connect nothing.
		if merged == 0 {
			break
		}

		o.Logger.Debug().
			Int("round", round).
			Int("vertices", n).
			Int("edges", work.NumEdges()).
			Int("merged", merged).
			Int("super_vertices", dsu.Count()).
			Msg("boruvka round")

		work.Contract(dsu.Labels())
		round++
	}

	components := work.NumVertices()
	o.Logger.Info().
		Int("rounds", round).
		Int("tree_edges", len(picked)).
		Int("components", components).
		Msg("boruvka done")

	return finish(methodBoruvka, picked, total, components, o)
}

// lightestPerVertex runs LightestEdgeFrom for every vertex of g, splitting
// the vertex range into one contiguous chunk per worker.
func lightestPerVertex[W csr.Number](ctx context.Context, g *csr.Graph[W], workers int) ([]csr.HalfEdge[W], []bool, error) {
	n := g.NumVertices()
	best := make([]csr.HalfEdge[W], n)
	has := make([]bool, n)
	if n == 0 {
		return best, has, nil
	}

	chunk := (n + workers - 1) / workers
	eg, egctx := errgroup.WithContext(ctx)
	for start := 0; start < n; start += chunk {
		start := start // per-iteration copy (go directive < 1.22)
		end := min(start+chunk, n)
		eg.Go(func() error {
			for u := start; u < end; u++ {
				if (u-start)%cancelCheckEvery == 0 {
					if err := egctx.Err(); err != nil {
						return err
					}
				}
				best[u], has[u] = g.LightestEdgeFrom(u)
			}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}

	return best, has, nil
}
