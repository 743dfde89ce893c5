// SPDX-License-Identifier: MIT
// Package: csrgraph/builder
//
// constants.go — method tags and minimum sizes shared by constructors.

package builder

const (
	methodBuildEdges   = "BuildEdges"
	methodCycle        = "Cycle"
	methodPath         = "Path"
	methodStar         = "Star"
	methodWheel        = "Wheel"
	methodComplete     = "Complete"
	methodGrid         = "Grid"
	methodRandomSparse = "RandomSparse"

	methodCompleteBipartite = "CompleteBipartite"
)

const (
	// MinCycleNodes is the smallest ring without loops or parallel edges.
	MinCycleNodes = 3
	// MinPathNodes is the smallest path with at least one edge.
	MinPathNodes = 2
	// MinStarNodes is a center plus one leaf.
	MinStarNodes = 2
	// MinWheelNodes is a hub plus a rim cycle of MinCycleNodes.
	MinWheelNodes = MinCycleNodes + 1
	// MinCompleteNodes allows K1 (a single isolated vertex).
	MinCompleteNodes = 1
	// MinGridDim is the smallest row or column count.
	MinGridDim = 1
	// MinRandomSparseNodes is the smallest vertex count for RandomSparse.
	MinRandomSparseNodes = 1
	// MinPartitionSize is the smallest side of CompleteBipartite.
	MinPartitionSize = 1
)

const (
	probMin = 0.0
	probMax = 1.0
)
