// File: types.go
// Role: sentinel errors, options and the Path result.

package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/campusnav/core"
)

// Sentinel errors returned by the engine.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrStartNotFound indicates that the start node is absent from the graph.
	ErrStartNotFound = fmt.Errorf("dijkstra: start node: %w", core.ErrUnknownNode)

	// ErrEndNotFound indicates that the end node is absent from the graph.
	ErrEndNotFound = fmt.Errorf("dijkstra: end node: %w", core.ErrUnknownNode)

	// ErrPathNotFound indicates that no route connects two present nodes.
	ErrPathNotFound = errors.New("dijkstra: no path between nodes")

	// ErrNoReachableNodes indicates that no other node is reachable from the source.
	ErrNoReachableNodes = errors.New("dijkstra: no reachable nodes from source")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value or NaN.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")

	// ErrBadImpassable indicates that the impassable threshold was zero, negative or NaN.
	ErrBadImpassable = errors.New("dijkstra: impassable threshold must be positive")
)

// Options configures a query.
type Options struct {
	// MaxCost stops expansion of candidates whose accumulated cost exceeds it.
	// Default +Inf (no cap).
	MaxCost float64
	// Impassable skips edges with weight ≥ this threshold. Default +Inf.
	Impassable float64
}

// Option represents a functional option for configuring a query.
type Option func(*Options)

// DefaultOptions returns Options with no cost cap and no impassable edges.
func DefaultOptions() Options {
	return Options{
		MaxCost:    math.Inf(1),
		Impassable: math.Inf(1),
	}
}

// WithMaxCost bounds the accumulated cost explored by a query.
// A target whose shortest cost is above c is reported as ErrPathNotFound.
// Panics on negative or NaN input.
func WithMaxCost(c float64) Option {
	if c < 0 || math.IsNaN(c) {
		panic(ErrBadMaxCost.Error())
	}
	return func(o *Options) {
		o.MaxCost = c
	}
}

// WithImpassableAt treats edges with weight ≥ t as walls.
// Panics on zero, negative or NaN input.
func WithImpassableAt(t float64) Option {
	if t <= 0 || math.IsNaN(t) {
		panic(ErrBadImpassable.Error())
	}
	return func(o *Options) {
		o.Impassable = t
	}
}

// Path is one resolved route.
//
// Nodes lists the route from start to end inclusive. Weights[i] is the weight
// of the edge Nodes[i]→Nodes[i+1], so len(Weights) == len(Nodes)-1. Cost is the
// sum of Weights accumulated in route order.
type Path[K comparable] struct {
	Nodes   []K
	Weights []float64
	Cost    float64
}

// Len returns the number of nodes on the path.
func (p Path[K]) Len() int { return len(p.Nodes) }
