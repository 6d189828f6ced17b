// File: longest.go
// Role: longest shortest-path branch from a source.
// Determinism:
//   - Candidates are scanned in graph insertion order; the first path with the
//     greatest node count wins.

package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

// LongestBranch returns, among the shortest paths from source to every other
// reachable node, the one with the most nodes.
//
// Steps:
//  1. Validate graph and source (ErrNilGraph, ErrStartNotFound).
//  2. Run one exhaustive search from source. Every finalized candidate chain is
//     exactly the route ShortestPath(source, node) would return, since a
//     single-target query pops the same prefix of the frontier.
//  3. Scan finalized destinations in graph insertion order and keep the first
//     path with the strictly greatest node count.
//
// Fails with ErrNoReachableNodes when nothing but source is finalized.
func LongestBranch[K comparable](g *core.Graph[K], source K, opts ...Option) (Path[K], error) {
	// 1) Validate
	if g == nil {
		return Path[K]{}, ErrNilGraph
	}
	if !g.HasNode(source) {
		return Path[K]{}, fmt.Errorf("%w: %v", ErrStartNotFound, source)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Exhaustive search
	r := newRunner(g, cfg)
	if _, err := r.run(source, nil); err != nil {
		return Path[K]{}, err
	}
	if len(r.visited) <= 1 {
		return Path[K]{}, fmt.Errorf("%w: %v", ErrNoReachableNodes, source)
	}

	// 3) Scan in insertion order
	var (
		best  Path[K]
		found bool
	)
	for _, id := range g.Nodes() {
		if id == source {
			continue
		}
		idx, ok := r.visited[id]
		if !ok {
			continue // unreachable, behind an impassable edge or beyond MaxCost
		}
		if p := r.path(idx); !found || p.Len() > best.Len() {
			best, found = p, true
		}
	}

	return best, nil
}
