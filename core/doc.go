// Package core provides the in-memory weighted directed Graph that backs the
// campus navigation engine.
//
// The Graph G = (V,E) is keyed by any comparable node type K:
//
//   - Node index: a hashmap.Map[K, adjacency] (separate chaining, 0.8
//     load-factor doubling), so node lookup is O(1) amortized.
//   - Adjacency record: outgoing edges in insertion order plus the list of
//     predecessors, so RemoveNode drops incoming edges without a full scan.
//   - At most one edge per ordered pair; AddEdge on an existing pair
//     overwrites the weight in place.
//   - Weights are float64, finite and non-negative.
//
// Why explicit AddNode before AddEdge?
//
//	The loader and the engine both rely on the invariant that every edge
//	endpoint is a present node. AddEdge never creates nodes implicitly; it
//	fails with ErrUnknownNode and names the missing side.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id K) (bool, error)        // O(1)
//	HasNode(id K) bool                 // O(1)
//	RemoveNode(id K) bool              // O(deg)
//	Nodes() []K                        // insertion order, O(V log V)
//	Order(id K) (uint64, bool)         // insertion sequence
//
//	// Edge lifecycle
//	AddEdge(from, to K, w float64) error   // O(outdeg)
//	RemoveEdge(from, to K) bool            // O(outdeg + indeg)
//	HasEdge(from, to K) bool               // O(outdeg)
//	Edge(from, to K) (float64, error)      // O(outdeg)
//	OutEdges(id K) ([]Edge[K], error)      // copy, insertion order
//	VisitOut(id K, fn) error               // no copy
//
//	// Whole-graph
//	Edges(), NodeCount(), EdgeCount(), Clear(), Stats()
//
// Concurrency:
//
//	The Graph carries no locks. Mutations must come from a single owner, and
//	queries must not overlap a mutation. The backend package enforces this
//	with a sync.RWMutex around the whole graph.
//
// Example:
//
//	g := core.NewStringGraph()
//	_, _ = g.AddNode("Bascom Hall")
//	_, _ = g.AddNode("Memorial Union")
//	_ = g.AddEdge("Bascom Hall", "Memorial Union", 182.4)
//	w, err := g.Edge("Bascom Hall", "Memorial Union")
package core
