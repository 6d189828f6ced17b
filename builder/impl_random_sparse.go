// SPDX-License-Identifier: MIT
// Package: campusnav/builder
//
// impl_random_sparse.go - RandomSparse(n, p).
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each admissible edge independently with prob p.
//   - Directed: ordered pairs (i,j), i≠j. Bidirectional: unordered pairs i<j, linked both ways.
//   - No self-loops.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Trial order: i asc, then j asc. One Bernoulli draw per pair, then one
//     weight draw per accepted edge.

package builder

import (
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a sparse digraph over n
// vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		// 1) Validate parameters early.
		if n < minRandomSparseVertices {
			return tooFew(methodRandomSparse, n, minRandomSparseVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Vertices
		if err := addVertices(methodRandomSparse, g, cfg, n); err != nil {
			return err
		}

		// 3) Trials
		for i := 0; i < n; i++ {
			start := 0
			if cfg.bidirectional {
				start = i + 1
			}
			for j := start; j < n; j++ {
				if i == j || !accept(cfg, p) {
					continue
				}
				if err := link(methodRandomSparse, g, cfg, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// accept runs one Bernoulli trial. p ∈ {0,1} never touches the RNG.
func accept(cfg builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	}

	return cfg.rng.Float64() < p
}
