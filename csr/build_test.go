package csr_test

import (
	"testing"

	"github.com/katalvlaran/csrgraph/csr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromList_Empty: no vertices, no edges, one offset, and any neighbor
// query fails fast.
func TestFromList_Empty(t *testing.T) {
	g := csr.FromList[int](nil)

	assert.Equal(t, 0, g.NumVertices())
	assert.Equal(t, 0, g.NumEdges())
	assert.Equal(t, 0, g.NumOriginalEdges())
	assert.Equal(t, []int{0}, g.Offsets())
	assert.Empty(t, g.HalfEdges())
	assert.Empty(t, g.AllEdges())
	assert.Empty(t, g.CurrentEdges())
	assert.NoError(t, g.Validate())

	requirePanicsWith(t, csr.ErrVertexOutOfRange, func() { g.EdgesFrom(0) })
	requirePanicsWith(t, csr.ErrVertexOutOfRange, func() { g.Degree(0) })
}

// TestFromList_Triangle: edges [(0,1,1), (1,2,2), (2,0,3)].
func TestFromList_Triangle(t *testing.T) {
	edges := []csr.Edge[int]{{0, 1, 1}, {1, 2, 2}, {2, 0, 3}}
	g := csr.FromList(edges)

	assert.Equal(t, 3, g.NumVertices())
	assert.Equal(t, 3, g.NumEdges())
	for u := 0; u < 3; u++ {
		assert.Len(t, g.EdgesFrom(u), 2, "degree of %d", u)
		assert.Equal(t, 2, g.Degree(u))
	}
	assert.Equal(t, []csr.HalfEdge[int]{{1, 1, 0}, {2, 3, 2}}, sortedHalfEdges(g, 0))

	for id, want := range edges {
		got, ok := g.OriginalEdge(id)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	assert.NoError(t, g.Validate())
}

// TestFromList_Counts checks n = 1 + max endpoint and m = input length.
func TestFromList_Counts(t *testing.T) {
	tests := []struct {
		name  string
		edges []csr.Edge[int]
		wantV int
	}{
		{"single", []csr.Edge[int]{{0, 1, 5}}, 2},
		{"gap", []csr.Edge[int]{{0, 7, 5}}, 8},
		{"unsorted", []csr.Edge[int]{{4, 2, 1}, {0, 3, 1}, {2, 1, 1}}, 5},
		{"loop", []csr.Edge[int]{{3, 3, 1}}, 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := csr.FromList(tc.edges)
			assert.Equal(t, tc.wantV, g.NumVertices())
			assert.Equal(t, len(tc.edges), g.NumEdges())
			assert.Len(t, g.HalfEdges(), 2*len(tc.edges))
			assert.NoError(t, g.Validate())
		})
	}
}

// TestFromList_StableOrder: each range follows input order, not neighbor order.
func TestFromList_StableOrder(t *testing.T) {
	g := csr.FromList([]csr.Edge[int]{{0, 2, 5}, {1, 0, 7}, {0, 3, 1}})

	assert.Equal(t, []csr.HalfEdge[int]{{2, 5, 0}, {1, 7, 1}, {3, 1, 2}}, g.EdgesFrom(0))
	assert.Equal(t, []int{0, 3, 4, 5, 6}, g.Offsets())
}

// TestFromList_SelfLoop: a loop stores both halves in its vertex range.
func TestFromList_SelfLoop(t *testing.T) {
	g := csr.FromList([]csr.Edge[int]{{0, 0, 4}, {0, 1, 1}})

	assert.Equal(t, 2, g.NumEdges())
	assert.Equal(t, []csr.HalfEdge[int]{{0, 4, 0}, {0, 4, 0}, {1, 1, 1}}, g.EdgesFrom(0))
	assert.Equal(t, 3, g.Degree(0))
	assert.Equal(t, []csr.LabeledEdge[int]{{0, 0, 4, 0}, {0, 1, 1, 1}}, g.CurrentEdges())
	assert.NoError(t, g.Validate())
}

// TestFromList_NegativeEndpoint fails fast.
func TestFromList_NegativeEndpoint(t *testing.T) {
	requirePanicsWith(t, csr.ErrVertexOutOfRange, func() {
		csr.FromList([]csr.Edge[int]{{0, -1, 1}})
	})
}

// TestFromList_CopiesInput: the store owns its original edge table.
func TestFromList_CopiesInput(t *testing.T) {
	edges := []csr.Edge[int]{{0, 1, 1}}
	g := csr.FromList(edges)
	edges[0] = csr.Edge[int]{U: 5, V: 6, Weight: 9}

	got, ok := g.OriginalEdge(0)
	require.True(t, ok)
	assert.Equal(t, csr.Edge[int]{U: 0, V: 1, Weight: 1}, got)
}

// TestFromListN keeps trailing isolated vertices and rejects endpoints >= n.
func TestFromListN(t *testing.T) {
	g := csr.FromListN(4, []csr.Edge[int]{{0, 1, 1}})
	assert.Equal(t, 4, g.NumVertices())
	assert.Equal(t, []int{0, 1, 2, 2, 2}, g.Offsets())
	assert.Empty(t, g.EdgesFrom(3))

	empty := csr.FromListN[int](0, nil)
	assert.Equal(t, []int{0}, empty.Offsets())

	requirePanicsWith(t, csr.ErrVertexOutOfRange, func() {
		csr.FromListN(2, []csr.Edge[int]{{0, 2, 1}})
	})
	requirePanicsWith(t, csr.ErrVertexOutOfRange, func() {
		csr.FromListN[int](-1, nil)
	})
}

// TestFromList_Symmetry: every half-edge u→v has a twin v→u with the same
// weight and edge id, on random graphs.
func TestFromList_Symmetry(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := randomGraph(t, seed, 60, 0.1)
		for u := 0; u < g.NumVertices(); u++ {
			for _, h := range g.EdgesFrom(u) {
				found := false
				for _, back := range g.EdgesFrom(h.To) {
					if back.To == u && back.EdgeID == h.EdgeID && back.Weight == h.Weight {
						found = true
						break
					}
				}
				assert.True(t, found, "seed %d: no twin for %d→%d (edge %d)", seed, u, h.To, h.EdgeID)
			}
		}
		assert.NoError(t, g.Validate())
	}
}
