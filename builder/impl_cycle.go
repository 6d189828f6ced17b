// SPDX-License-Identifier: MIT
// Package: campusnav/builder
//
// impl_cycle.go - Cycle(n).
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Edges i→(i+1) mod n for i=0..n-1, closing edge last.

package builder

import "github.com/katalvlaran/campusnav/core"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a directed ring C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCycleNodes {
			return tooFew(methodCycle, n, minCycleNodes)
		}
		if err := addVertices(methodCycle, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := link(methodCycle, g, cfg, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}
