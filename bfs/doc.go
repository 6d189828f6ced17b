// Package bfs provides breadth-first search over a core.Graph, returning hop
// distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - OnVisit hook may abort the walk with an error.
//   - WithFilterEdge prunes individual edges (e.g. impassable weights).
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Edge weights are ignored when ordering the walk. The backend package uses
// Walk for fewest-stops routes (OnVisit stops at the target, PathTo rebuilds
// the route) and for hop-limited neighborhoods (MaxDepth).
//
// Determinism
//
//	core.Graph.VisitOut yields edges in insertion order and the walker
//	enqueues neighbors in that order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.Walk(g, "Library", bfs.WithMaxDepth[string](3))
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, or hook error
//	}
//	path, _ := res.PathTo("Gym")
package bfs
