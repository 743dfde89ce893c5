// Package csrgraph is a compressed sparse row (CSR) store for undirected,
// weighted graphs that is built once from an edge list and then shrunk in
// place by vertex contraction, the core step of Borůvka-style MST drivers
// and multilevel graph algorithms.
//
// What is inside:
//
//	csr/        — the store: FromList, Rebuild, Contract, EdgesFrom,
//	              OriginalEdge and read-only views of the CSR tables
//	labeling/   — producers of contraction labels: DisjointSet,
//	              ConnectedComponents
//	mst/        — Borůvka (parallel scan + contraction), Kruskal, Prim
//	builder/    — deterministic edge-list fixtures: cycles, grids, G(n,p)…
//	converters/ — gonum interop (ToGonum, FromGonum)
//	examples/   — runnable programs
//
// Why CSR:
//
//	Every vertex's half-edges sit in one contiguous range of a flat table,
//	so neighbor scans are cache friendly and a contraction is two linear
//	passes (count, then scatter) instead of map surgery.
//
// Quick example:
//
//	g := csr.FromList([]csr.Edge[int]{{0, 1, 10}, {1, 2, 20}, {2, 3, 30}})
//	g.Contract([]int{0, 0, 1, 1})   // 2 super-vertices, edge 1 survives
//	e, _ := g.OriginalEdge(g.EdgesFrom(0)[0].EdgeID)   // {1 2 20}
//
//	go get github.com/katalvlaran/csrgraph
package csrgraph
