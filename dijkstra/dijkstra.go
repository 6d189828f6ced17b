// File: dijkstra.go
// Role: single-target search with arena-backed predecessor chains.
// Determinism:
//   - Frontier ties on cost pop in push order, and neighbors are pushed in
//     adjacency insertion order, so identical build order gives identical paths.
// Concurrency:
//   - Read-only on the graph. Callers must not mutate g during a query.

package dijkstra

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

// ShortestPath returns the minimum-cost route from start to end.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start and end must be present; a missing side fails with ErrStartNotFound
//     or ErrEndNotFound, both missing with errors.Join of the two. Both wrap
//     core.ErrUnknownNode.
//
// If the frontier drains without finalizing end, ErrPathNotFound is returned.
// A query with start == end returns the one-node path at cost 0.
//
// Complexity:
//   - Time:  O((V + E) log E) with lazy deletion
//   - Space: O(V + E) for the arena and frontier
func ShortestPath[K comparable](g *core.Graph[K], start, end K, opts ...Option) (Path[K], error) {
	// 1) Validate inputs
	if err := validate(g, start, end); err != nil {
		return Path[K]{}, err
	}

	// 2) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3) Search until end is finalized
	r := newRunner(g, cfg)
	terminal, err := r.run(start, &end)
	if err != nil {
		return Path[K]{}, err
	}
	if terminal < 0 {
		return Path[K]{}, fmt.Errorf("%w: %v→%v", ErrPathNotFound, start, end)
	}

	return r.path(terminal), nil
}

// PathData returns only the node sequence of the shortest route.
func PathData[K comparable](g *core.Graph[K], start, end K, opts ...Option) ([]K, error) {
	p, err := ShortestPath(g, start, end, opts...)
	if err != nil {
		return nil, err
	}

	return p.Nodes, nil
}

// PathCost returns only the total cost of the shortest route.
func PathCost[K comparable](g *core.Graph[K], start, end K, opts ...Option) (float64, error) {
	p, err := ShortestPath(g, start, end, opts...)
	if err != nil {
		return 0, err
	}

	return p.Cost, nil
}

// validate checks graph and endpoint presence, reporting every missing side.
func validate[K comparable](g *core.Graph[K], start, end K) error {
	if g == nil {
		return ErrNilGraph
	}
	var errs []error
	if !g.HasNode(start) {
		errs = append(errs, fmt.Errorf("%w: %v", ErrStartNotFound, start))
	}
	if !g.HasNode(end) {
		errs = append(errs, fmt.Errorf("%w: %v", ErrEndNotFound, end))
	}

	return errors.Join(errs...)
}

// searchNode is one frontier candidate. parent indexes the arena; -1 marks the origin.
type searchNode[K comparable] struct {
	node   K
	cost   float64
	weight float64 // weight of the edge from parent to node
	parent int
}

// runner holds the mutable state for a single query. It is discarded on return.
type runner[K comparable] struct {
	g       *core.Graph[K]
	options Options
	arena   []searchNode[K]
	visited map[K]int // finalized node → arena index of its winning candidate
	pq      frontier[K]
	seq     uint64
}

func newRunner[K comparable](g *core.Graph[K], cfg Options) *runner[K] {
	n := g.NodeCount()
	r := &runner[K]{
		g:       g,
		options: cfg,
		arena:   make([]searchNode[K], 0, n),
		visited: make(map[K]int, n),
	}
	r.pq.arena = &r.arena

	return r
}

// push appends a candidate to the arena and the frontier.
func (r *runner[K]) push(node K, cost, weight float64, parent int) {
	r.arena = append(r.arena, searchNode[K]{node: node, cost: cost, weight: weight, parent: parent})
	heap.Push(&r.pq, entry{idx: len(r.arena) - 1, seq: r.seq})
	r.seq++
}

// run expands the frontier from start. With a non-nil target it stops as soon
// as the target is finalized and returns its arena index, or -1 if the target
// was never reached. With a nil target it drains the frontier and returns -1.
func (r *runner[K]) run(start K, target *K) (int, error) {
	r.push(start, 0, 0, -1)

	for r.pq.Len() > 0 {
		// 1) Pop the cheapest candidate; ties pop in push order.
		idx := heap.Pop(&r.pq).(entry).idx
		cand := r.arena[idx]

		// 2) Lazy deletion of stale candidates.
		if _, done := r.visited[cand.node]; done {
			continue
		}

		// 3) Finalize.
		r.visited[cand.node] = idx
		if target != nil && cand.node == *target {
			return idx, nil
		}

		// 4) Relax every outgoing edge towards non-finalized neighbors.
		if err := r.relax(idx, cand); err != nil {
			return -1, err
		}
	}

	return -1, nil
}

// relax pushes one candidate per traversable outgoing edge of cand.
func (r *runner[K]) relax(idx int, cand searchNode[K]) error {
	edges, err := r.g.OutEdges(cand.node)
	if err != nil {
		return fmt.Errorf("dijkstra: edges of %v: %w", cand.node, err)
	}
	for _, e := range edges {
		if _, done := r.visited[e.To]; done {
			continue
		}
		if e.Weight >= r.options.Impassable {
			continue
		}
		next := cand.cost + e.Weight
		if next > r.options.MaxCost {
			continue
		}
		r.push(e.To, next, e.Weight, idx)
	}

	return nil
}

// path follows parent links from terminal back to the origin and reverses them.
func (r *runner[K]) path(terminal int) Path[K] {
	var (
		nodes   []K
		weights []float64
	)
	for i := terminal; i >= 0; i = r.arena[i].parent {
		nodes = append(nodes, r.arena[i].node)
		if r.arena[i].parent >= 0 {
			weights = append(weights, r.arena[i].weight)
		}
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	for i, j := 0, len(weights)-1; i < j; i, j = i+1, j-1 {
		weights[i], weights[j] = weights[j], weights[i]
	}
	if weights == nil {
		weights = []float64{}
	}

	return Path[K]{Nodes: nodes, Weights: weights, Cost: r.arena[terminal].cost}
}

// entry is a frontier slot: an arena index plus its push sequence.
type entry struct {
	idx int
	seq uint64
}

// frontier is a min-heap of entries ordered by (arena cost, push sequence).
// Stale entries are kept and skipped when popped.
type frontier[K comparable] struct {
	items []entry
	arena *[]searchNode[K]
}

// Len returns the number of entries in the heap.
func (f frontier[K]) Len() int { return len(f.items) }

// Less orders by cost, then by push sequence.
func (f frontier[K]) Less(i, j int) bool {
	a, b := (*f.arena)[f.items[i].idx].cost, (*f.arena)[f.items[j].idx].cost
	if a != b {
		return a < b
	}
	return f.items[i].seq < f.items[j].seq
}

// Swap swaps two entries in the heap.
func (f frontier[K]) Swap(i, j int) { f.items[i], f.items[j] = f.items[j], f.items[i] }

// Push adds a new entry; called by heap.Push.
func (f *frontier[K]) Push(x interface{}) { f.items = append(f.items, x.(entry)) }

// Pop removes the last entry; called by heap.Pop.
func (f *frontier[K]) Pop() interface{} {
	old := f.items
	n := len(old)
	item := old[n-1]
	f.items = old[:n-1]

	return item
}
