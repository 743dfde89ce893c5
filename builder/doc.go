// SPDX-License-Identifier: MIT

// Package builder produces deterministic edge lists for csr.FromList and
// csr.FromListN: classic topologies and seeded random graphs, used as test
// fixtures, benchmark inputs and examples.
//
// Components:
//
//   - BuildEdges / BuildGraph: compose Constructors as a disjoint union.
//     Each constructor allocates its vertices after the previous ones, so
//     BuildEdges(nil, Cycle(3), Path(2)) yields vertices 0..2 and 3..4.
//   - Constructors: Cycle, Path, Star, Wheel, Complete, CompleteBipartite,
//     Grid, RandomSparse.
//   - Options: WithSeed, WithRand, WithWeightFn (and shorthands).
//   - Weight distributions (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn, UniformIntWeightFn.
//
// Guarantees:
//
//   - Same options, seed and constructor order give identical edge lists.
//   - Constructors validate their parameters and return sentinel errors
//     (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource).
//   - Option constructors panic on meaningless values (nil functions,
//     negative weights); constructors themselves never panic.
package builder
