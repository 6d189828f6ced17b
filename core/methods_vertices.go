// File: methods_vertices.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns IDs in insertion order (ascending Order()).
//
// Concurrency:
//   - None inside the Graph; see the Graph type comment.
package core

import (
	"fmt"
	"sort"
)

// AddNode inserts a node if missing.
//
// Implementation:
//   - Stage 1: If the node index already holds id, report false (no-op).
//   - Stage 2: Allocate an empty adjacency record stamped with the next
//     insertion sequence and register it.
//
// Returns:
//   - bool: true if the node was created.
//   - error: only for keys the node index rejects (hashmap.ErrNilKey, wrapped).
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph[K]) AddNode(id K) (bool, error) {
	if g.nodes.ContainsKey(id) {
		return false, nil
	}

	rec := &adjacency[K]{id: id, seq: g.nextSeq}
	if err := g.nodes.Put(id, rec); err != nil {
		return false, fmt.Errorf("core: AddNode: %w", err)
	}
	g.nextSeq++

	return true, nil
}

// HasNode reports whether id is present.
// Complexity: O(1) amortized.
func (g *Graph[K]) HasNode(id K) bool {
	return g.nodes.ContainsKey(id)
}

// RemoveNode deletes id together with every edge that touches it.
//
// Implementation:
//   - Stage 1: Look up the record; report false if absent.
//   - Stage 2: For each outgoing edge, drop id from the target's predecessor list.
//   - Stage 3: For each predecessor, drop its edge into id.
//   - Stage 4: Remove the record from the node index.
//
// Behavior highlights:
//   - Self-loops are counted once.
//   - No other node keeps a reference to id afterwards.
//
// Complexity:
//   - Time O(Σ deg of the touched neighbors), Space O(1).
func (g *Graph[K]) RemoveNode(id K) bool {
	rec, ok := g.nodes.Lookup(id)
	if !ok {
		return false
	}

	removed := 0
	for _, e := range rec.out {
		removed++
		if e.To == id {
			continue // self-loop: the record itself is going away
		}
		if dst, found := g.nodes.Lookup(e.To); found {
			dst.in = dropID(dst.in, id)
		}
	}
	for _, src := range rec.in {
		if src == id {
			continue
		}
		if from, found := g.nodes.Lookup(src); found {
			var dropped bool
			from.out, dropped = dropEdgeTo(from.out, id)
			if dropped {
				removed++
			}
		}
	}

	_, _ = g.nodes.Remove(id)
	g.edges -= removed

	return true
}

// Nodes returns every node ID in insertion order.
//
// Implementation:
//   - Stage 1: Collect adjacency records from the node index.
//   - Stage 2: Sort them by insertion sequence.
//
// Complexity:
//   - Time O(V log V), Space O(V).
func (g *Graph[K]) Nodes() []K {
	recs := g.records()
	ids := make([]K, len(recs))
	for i, rec := range recs {
		ids[i] = rec.id
	}

	return ids
}

// Order returns the insertion sequence of id. Earlier nodes have smaller
// values; sequences are never reused within one Graph until Clear.
func (g *Graph[K]) Order(id K) (uint64, bool) {
	rec, ok := g.nodes.Lookup(id)
	if !ok {
		return 0, false
	}

	return rec.seq, true
}

// NodeCount returns the number of nodes.
func (g *Graph[K]) NodeCount() int { return g.nodes.Len() }

// Clear removes every node and edge. The node index keeps its capacity.
func (g *Graph[K]) Clear() {
	g.nodes.Clear()
	g.edges = 0
	g.nextSeq = 0
}

// records returns adjacency records sorted by insertion sequence.
func (g *Graph[K]) records() []*adjacency[K] {
	recs := make([]*adjacency[K], 0, g.nodes.Len())
	g.nodes.Range(func(_ K, rec *adjacency[K]) bool {
		recs = append(recs, rec)
		return true
	})
	sort.Slice(recs, func(i, j int) bool { return recs[i].seq < recs[j].seq })

	return recs
}

// dropID removes the first occurrence of id from ids, preserving order.
func dropID[K comparable](ids []K, id K) []K {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}

	return ids
}
