// SPDX-License-Identifier: MIT
// Package: campusnav/builder
//
// impl_path.go - Path(n).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices 0..n-1 via cfg.idFn, then edges (i-1)→i for i=1..n-1.

package builder

import "github.com/katalvlaran/campusnav/core"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minPathNodes {
			return tooFew(methodPath, n, minPathNodes)
		}
		if err := addVertices(methodPath, g, cfg, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := link(methodPath, g, cfg, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
