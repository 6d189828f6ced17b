// SPDX-License-Identifier: MIT
// Package builder assembles deterministic core.Graph[string] fixtures for
// tests, benchmarks and demos.
//
// One orchestrator, BuildGraph, resolves functional options into an immutable
// builderConfig and applies Constructors in order:
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 60)},
//		builder.RandomSparse(50, 0.08),
//	)
//
// Topologies: Path, Cycle, Star, Grid, Complete, RandomSparse. Edges are
// directed; WithBidirectional adds the reverse edge with the same weight.
//
// Determinism: same options, seed and constructor order give identical
// node insertion order, edge order and weights.
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed. Branch with errors.Is. Option constructors panic on
// meaningless input; constructors never panic.
package builder
