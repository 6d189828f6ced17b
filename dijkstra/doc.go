// Package dijkstra is the shortest-path engine over core.Graph.
//
// Overview:
//
//   - ShortestPath finds the minimum-cost route between two nodes. PathData and
//     PathCost return just the node sequence or just the total.
//   - LongestBranch returns the shortest path, from a fixed source, that visits
//     the most nodes.
//   - Queries are stateless: nothing is cached between calls and the graph is
//     never written.
//
// Algorithm:
//
//	Candidates ("search nodes") live in an arena slice. Each records its node,
//	accumulated cost, the weight of the edge it arrived on, and the arena index
//	of its predecessor (-1 for the origin). The frontier is a container/heap of
//	arena indices ordered by cost, then by push sequence.
//
//	Relaxation always pushes a new candidate; there is no decrease-key.
//	Candidates for already finalized nodes are dropped when popped (lazy
//	deletion). The query ends when the target is finalized or the frontier
//	drains. Path reconstruction follows predecessor indices back to the origin
//	and reverses them.
//
// Determinism:
//
//	Equal-cost candidates pop in the order they were pushed, and neighbors are
//	pushed in adjacency insertion order. LongestBranch scans destinations in
//	graph insertion order and keeps the first maximum.
//
// Options:
//
//   - WithMaxCost(c):      candidates above cost c are not expanded.
//   - WithImpassableAt(t): edges with weight ≥ t are skipped.
//
// Errors:
//
//   - ErrNilGraph          nil graph.
//   - ErrStartNotFound     start absent (wraps core.ErrUnknownNode).
//   - ErrEndNotFound       end absent (wraps core.ErrUnknownNode).
//   - ErrPathNotFound      both present, no route.
//   - ErrNoReachableNodes  LongestBranch source reaches nothing else.
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E)
//
// Example:
//
//	p, err := dijkstra.ShortestPath(g, "Bascom Hall", "Camp Randall")
//	if errors.Is(err, dijkstra.ErrPathNotFound) {
//		// no route
//	}
//	fmt.Println(p.Nodes, p.Cost)
package dijkstra
