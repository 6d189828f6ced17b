// SPDX-License-Identifier: MIT
// Package: campusnav/builder
//
// impl_grid.go - Grid(rows, cols).
//
// Contract:
//   - rows, cols ≥ 1 (else ErrTooFewVertices).
//   - Vertex IDs are "r,c" in row-major order; cfg.idFn is not used.
//   - For each cell: edge to the right neighbor, then to the bottom neighbor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		// 1) Validate
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		// 2) Vertices, row-major
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := fmt.Sprintf(gridIDFmt, r, c)
				if _, err := g.AddNode(id); err != nil {
					return fmt.Errorf("%s: AddNode(%s): %w: %w", methodGrid, id, err, ErrConstructFailed)
				}
			}
		}

		// 3) Right and bottom neighbors
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := fmt.Sprintf(gridIDFmt, r, c)
				if c+1 < cols {
					if err := link(methodGrid, g, cfg, u, fmt.Sprintf(gridIDFmt, r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(methodGrid, g, cfg, u, fmt.Sprintf(gridIDFmt, r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
