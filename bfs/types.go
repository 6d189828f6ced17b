// File: types.go
// Role: options, result type and sentinel errors.

package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Walk is invoked.
type Option[K comparable] func(*Options[K])

// Options holds parameters and callbacks to customize a walk.
type Options[K comparable] struct {
	// OnVisit is called when visiting a vertex. If it returns an error,
	// the walk aborts and propagates that error together with the partial
	// Result, so a hook can stop the walk early once it found its target.
	OnVisit func(id K, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterEdge can skip edges by returning false.
	// Called for each outgoing edge of the vertex being expanded.
	FilterEdge func(e core.Edge[K]) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all edges followed)
//   - no-op OnVisit
func DefaultOptions[K comparable]() Options[K] {
	return Options[K]{
		OnVisit:    func(K, int) error { return nil },
		MaxDepth:   0,
		FilterEdge: func(core.Edge[K]) bool { return true },
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the walk.
func WithOnVisit[K comparable](fn func(id K, depth int) error) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[K comparable](d int) Option[K] {
	return func(o *Options[K]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterEdge skips edges when fn returns false.
func WithFilterEdge[K comparable](fn func(e core.Edge[K]) bool) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// Result holds the outcome of a walk:
//   - Order: vertices visited, in visit sequence (start first).
//   - Depth: map from vertex ID to its distance (in edges) from the start.
//   - Parent: map from vertex ID to its predecessor in the BFS tree.
type Result[K comparable] struct {
	Order  []K
	Depth  map[K]int
	Parent map[K]K
}

// Reached reports whether id was visited.
func (r *Result[K]) Reached(id K) bool {
	_, ok := r.Depth[id]
	return ok
}

// PathTo reconstructs the fewest-hops path from the start vertex to dest.
// Returns an error if dest was not reached.
func (r *Result[K]) PathTo(dest K) ([]K, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %v", dest)
	}
	// build reversed path
	path := []K{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
