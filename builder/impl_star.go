// SPDX-License-Identifier: MIT
// Package: campusnav/builder
//
// impl_star.go - Star(n).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Vertex 0 is the hub; edges 0→i for i=1..n-1.

package builder

import "github.com/katalvlaran/campusnav/core"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a hub with n-1 spokes.
func Star(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minStarNodes {
			return tooFew(methodStar, n, minStarNodes)
		}
		if err := addVertices(methodStar, g, cfg, n); err != nil {
			return err
		}
		hub := cfg.idFn(0)
		for i := 1; i < n; i++ {
			if err := link(methodStar, g, cfg, hub, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
