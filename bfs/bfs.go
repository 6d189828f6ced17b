// File: bfs.go
// Role: queue-driven walker.

package bfs

import (
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem[K comparable] struct {
	id    K
	depth int
}

// walker encapsulates mutable BFS state.
type walker[K comparable] struct {
	graph *core.Graph[K]
	opts  Options[K]
	queue []queueItem[K]
	head  int
	res   *Result[K]
}

// Walk runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any OnVisit error.
func Walk[K comparable](g *core.Graph[K], start K, opts ...Option[K]) (*Result[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	n := g.NodeCount()
	w := &walker[K]{
		graph: g,
		opts:  o,
		queue: make([]queueItem[K], 0, n),
		res: &Result[K]{
			Order:  make([]K, 0, n),
			Depth:  make(map[K]int, n),
			Parent: make(map[K]K, n),
		},
	}

	// Seed queue with start vertex (no parent)
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem[K]{id: start})

	return w.res, w.loop()
}

// loop processes the queue until empty or error.
func (w *walker[K]) loop() error {
	for w.head < len(w.queue) {
		item := w.queue[w.head]
		w.head++

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues each unseen
// neighbor in adjacency insertion order.
func (w *walker[K]) enqueueNeighbors(item queueItem[K]) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}

	return w.graph.VisitOut(item.id, func(e core.Edge[K]) bool {
		if !w.opts.FilterEdge(e) {
			return true
		}
		// first time seen?
		if _, seen := w.res.Depth[e.To]; !seen {
			w.res.Depth[e.To] = nextDepth
			w.res.Parent[e.To] = item.id
			w.queue = append(w.queue, queueItem[K]{id: e.To, depth: nextDepth})
		}
		return true
	})
}
