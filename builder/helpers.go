// Package builder provides internal helpers shared by constructors.
package builder

import (
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

// addVertices inserts cfg.idFn(0..n-1) in ascending index order.
// Existing vertices are kept, so constructors compose.
func addVertices(method string, g *core.Graph[string], cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if _, err := g.AddNode(id); err != nil {
			return fmt.Errorf("%s: AddNode(%s): %w: %w", method, id, err, ErrConstructFailed)
		}
	}

	return nil
}

// link emits u→v with one weight draw, plus v→u when cfg.bidirectional is set.
func link(method string, g *core.Graph[string], cfg builderConfig, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w: %w", method, u, v, w, err, ErrConstructFailed)
	}
	if !cfg.bidirectional {
		return nil
	}
	if err := g.AddEdge(v, u, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w: %w", method, v, u, w, err, ErrConstructFailed)
	}

	return nil
}

// tooFew wraps ErrTooFewVertices with the constructor name and bounds.
func tooFew(method string, n, min int) error {
	return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
}
