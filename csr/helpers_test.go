package csr_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/katalvlaran/csrgraph/builder"
	"github.com/katalvlaran/csrgraph/csr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requirePanicsWith fails the test unless fn panics with an error wrapping
// sentinel.
func requirePanicsWith(t *testing.T, sentinel error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic wrapping %v", sentinel)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		assert.True(t, errors.Is(err, sentinel), "panic %v does not wrap %v", err, sentinel)
	}()
	fn()
}

// randomGraph builds a seeded G(n,p) fixture with integer weights.
func randomGraph(t testing.TB, seed int64, n int, p float64) *csr.Graph[float64] {
	t.Helper()
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{
			builder.WithSeed(seed),
			builder.WithWeightFn(builder.UniformIntWeightFn(1, 100)),
		},
		builder.RandomSparse(n, p),
	)
	require.NoError(t, err)
	return g
}

// sortedHalfEdges returns a sorted copy of the half-edges leaving u.
func sortedHalfEdges[W int | float64](g *csr.Graph[W], u int) []csr.HalfEdge[W] {
	out := slices.Clone(g.EdgesFrom(u))
	slices.SortFunc(out, func(a, b csr.HalfEdge[W]) int {
		if a.To != b.To {
			return a.To - b.To
		}
		return a.EdgeID - b.EdgeID
	})
	return out
}
