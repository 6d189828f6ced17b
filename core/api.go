// File: api.go
// Role: Read-only diagnostics facade over the node index.
// Policy:
//   - No algorithms or hidden state here.

package core

// GraphStats is a snapshot of graph size and node-index occupancy.
type GraphStats struct {
	NodeCount   int     // number of nodes
	EdgeCount   int     // number of directed edges
	IndexCap    int     // bucket count of the node index
	IndexLoad   float64 // NodeCount / IndexCap
	SelfLoops   int     // edges with From == To
	MaxOutDeg   int     // largest outgoing degree
	IsolatedCnt int     // nodes with neither outgoing nor incoming edges
}

// Stats produces a snapshot of counts and node-index occupancy.
//
// Implementation:
//   - Stage 1: Read sizes from the node index and edge counter.
//   - Stage 2: Scan adjacency records once for loops, degree and isolation.
//
// Complexity:
//   - Time O(V+E), Space O(1).
func (g *Graph[K]) Stats() GraphStats {
	stats := GraphStats{
		NodeCount: g.nodes.Len(),
		EdgeCount: g.edges,
		IndexCap:  g.nodes.Cap(),
		IndexLoad: g.nodes.LoadFactor(),
	}

	g.nodes.Range(func(id K, rec *adjacency[K]) bool {
		if len(rec.out) > stats.MaxOutDeg {
			stats.MaxOutDeg = len(rec.out)
		}
		if len(rec.out) == 0 && len(rec.in) == 0 {
			stats.IsolatedCnt++
		}
		for _, e := range rec.out {
			if e.To == id {
				stats.SelfLoops++
			}
		}
		return true
	})

	return stats
}
