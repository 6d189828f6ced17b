// SPDX-License-Identifier: MIT
// Package: campusnav/builder
//
// api.go - public entry point.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters first and return sentinel
// errors; they never panic.
type Constructor func(g *core.Graph[string], cfg builderConfig) error

// BuildGraph creates a new string graph, resolves the builder configuration
// from bopts, and applies all constructors in order. Any constructor error is
// wrapped with "BuildGraph: %w" and returned immediately.
//
// Complexity: O(len(bopts)) plus the sum of constructor costs.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph[string], error) {
	g := core.NewStringGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
