package core_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/campusnav/core"
)

// BenchmarkAddEdge_Chain measures building a chain of n nodes.
func BenchmarkAddEdge_Chain(b *testing.B) {
	const n = 2048
	ids := make([]string, n)
	for i := range ids {
		ids[i] = "v" + strconv.Itoa(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g := core.NewStringGraph()
		for _, id := range ids {
			_, _ = g.AddNode(id)
		}
		for j := 1; j < n; j++ {
			_ = g.AddEdge(ids[j-1], ids[j], 1)
		}
	}
}

// BenchmarkRemoveNode_Hub measures dropping a hub with many incoming edges.
func BenchmarkRemoveNode_Hub(b *testing.B) {
	const n = 512
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := core.NewGraph[int]()
		_, _ = g.AddNode(-1)
		for j := 0; j < n; j++ {
			_, _ = g.AddNode(j)
			_ = g.AddEdge(j, -1, 1)
			_ = g.AddEdge(-1, j, 1)
		}
		b.StartTimer()
		g.RemoveNode(-1)
	}
}
