package csr_test

import (
	"testing"

	"github.com/katalvlaran/csrgraph/csr"
)

// BenchmarkFromList measures construction of a 2000-vertex G(n,p) graph.
func BenchmarkFromList(b *testing.B) {
	edges := randomGraph(b, 42, 2000, 0.005).AllEdges()
	in := make([]csr.Edge[float64], len(edges))
	for i, e := range edges {
		in[i] = csr.Edge[float64]{U: e.U, V: e.V, Weight: e.Weight}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = csr.FromList(in)
	}
}

// BenchmarkContract halves the vertex count once per iteration.
func BenchmarkContract(b *testing.B) {
	base := randomGraph(b, 42, 2000, 0.005)
	labels := make([]int, base.NumVertices())
	for i := range labels {
		labels[i] = i / 2
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := base.Clone()
		b.StartTimer()
		g.Contract(labels)
	}
}

// BenchmarkLightestEdgeFrom scans every vertex once.
func BenchmarkLightestEdgeFrom(b *testing.B) {
	g := randomGraph(b, 42, 2000, 0.005)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for u := 0; u < g.NumVertices(); u++ {
			_, _ = g.LightestEdgeFrom(u)
		}
	}
}
