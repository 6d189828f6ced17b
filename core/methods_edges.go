// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edge/OutEdges/EdgeCount.
// Determinism:
//   - OutEdges() returns edges in insertion order; overwriting a weight keeps position.
// Policy:
//   - At most one edge per ordered (from, to) pair. AddEdge on an existing pair
//     overwrites the weight.
//   - Weights must be finite and >= 0.

package core

import (
	"fmt"
	"math"
)

// AddEdge creates or replaces the directed edge from→to.
//
// Steps:
//  1. Validate weight (ErrNegativeWeight, ErrBadWeight).
//  2. Resolve both endpoints; a missing one fails with ErrUnknownNode naming the side.
//  3. If from→to exists, overwrite its weight in place.
//  4. Otherwise append to from.out and register from in to.in.
//
// Complexity: O(outdeg(from)) for the duplicate scan.
func (g *Graph[K]) AddEdge(from, to K, weight float64) error {
	// 1) Weight validation
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: %v→%v weight=%v", ErrBadWeight, from, to, weight)
	}
	if weight < 0 {
		return fmt.Errorf("%w: %v→%v weight=%v", ErrNegativeWeight, from, to, weight)
	}

	// 2) Endpoints must already exist
	src, ok := g.nodes.Lookup(from)
	if !ok {
		return fmt.Errorf("%w: source %v", ErrUnknownNode, from)
	}
	dst, ok := g.nodes.Lookup(to)
	if !ok {
		return fmt.Errorf("%w: destination %v", ErrUnknownNode, to)
	}

	// 3) Overwrite an existing pair
	for i := range src.out {
		if src.out[i].To == to {
			src.out[i].Weight = weight
			return nil
		}
	}

	// 4) New edge
	src.out = append(src.out, Edge[K]{From: from, To: to, Weight: weight})
	dst.in = append(dst.in, from)
	g.edges++

	return nil
}

// RemoveEdge deletes from→to. Reports false if the edge or an endpoint is absent.
// Complexity: O(outdeg(from) + indeg(to)).
func (g *Graph[K]) RemoveEdge(from, to K) bool {
	src, ok := g.nodes.Lookup(from)
	if !ok {
		return false
	}
	var dropped bool
	src.out, dropped = dropEdgeTo(src.out, to)
	if !dropped {
		return false
	}
	if dst, found := g.nodes.Lookup(to); found {
		dst.in = dropID(dst.in, from)
	}
	g.edges--

	return true
}

// HasEdge reports whether from→to exists.
func (g *Graph[K]) HasEdge(from, to K) bool {
	_, err := g.Edge(from, to)
	return err == nil
}

// Edge returns the weight of from→to.
// Errors: ErrEdgeNotFound (wrapped) when the edge or either endpoint is missing.
// Complexity: O(outdeg(from)).
func (g *Graph[K]) Edge(from, to K) (float64, error) {
	src, ok := g.nodes.Lookup(from)
	if !ok || !g.nodes.ContainsKey(to) {
		return 0, fmt.Errorf("%w: %v→%v", ErrEdgeNotFound, from, to)
	}
	for _, e := range src.out {
		if e.To == to {
			return e.Weight, nil
		}
	}

	return 0, fmt.Errorf("%w: %v→%v", ErrEdgeNotFound, from, to)
}

// OutEdges returns a copy of the outgoing edges of id in insertion order.
// Errors: ErrUnknownNode (wrapped) if id is absent.
// Complexity: O(outdeg(id)).
func (g *Graph[K]) OutEdges(id K) ([]Edge[K], error) {
	rec, ok := g.nodes.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownNode, id)
	}
	out := make([]Edge[K], len(rec.out))
	copy(out, rec.out)

	return out, nil
}

// VisitOut calls fn for each outgoing edge of id in insertion order without
// copying, stopping early when fn returns false. fn must not mutate g.
// Errors: ErrUnknownNode (wrapped) if id is absent.
func (g *Graph[K]) VisitOut(id K, fn func(e Edge[K]) bool) error {
	rec, ok := g.nodes.Lookup(id)
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownNode, id)
	}
	for _, e := range rec.out {
		if !fn(e) {
			break
		}
	}

	return nil
}

// Edges returns every edge, grouped by source in node insertion order.
// Complexity: O(V log V + E).
func (g *Graph[K]) Edges() []Edge[K] {
	all := make([]Edge[K], 0, g.edges)
	for _, rec := range g.records() {
		all = append(all, rec.out...)
	}

	return all
}

// EdgeCount returns the number of stored edges.
func (g *Graph[K]) EdgeCount() int { return g.edges }

// dropEdgeTo removes the edge targeting to from out, preserving order.
func dropEdgeTo[K comparable](out []Edge[K], to K) ([]Edge[K], bool) {
	for i, e := range out {
		if e.To == to {
			return append(out[:i], out[i+1:]...), true
		}
	}

	return out, false
}
