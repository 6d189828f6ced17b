// SPDX-License-Identifier: MIT
// Package: campusnav/builder
//
// impl_complete.go - Complete(n).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Every ordered pair (i,j), i≠j, gets an edge; i asc, then j asc.
//   - WithBidirectional is redundant here; the overwrite policy of core keeps one edge per pair.

package builder

import "github.com/katalvlaran/campusnav/core"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete digraph on n vertices.
func Complete(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCompleteNodes {
			return tooFew(methodComplete, n, minCompleteNodes)
		}
		if err := addVertices(methodComplete, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := link(methodComplete, g, cfg, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
