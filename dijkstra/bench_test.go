package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/campusnav/builder"
	"github.com/katalvlaran/campusnav/dijkstra"
)

// BenchmarkShortestPath_Grid measures corner-to-corner queries on a 30×30 grid.
func BenchmarkShortestPath_Grid(b *testing.B) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithUniformWeight(1, 10), builder.WithBidirectional()},
		builder.Grid(30, 30),
	)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.ShortestPath(g, "0,0", "29,29"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkLongestBranch_Sparse measures the exhaustive query on a random digraph.
func BenchmarkLongestBranch_Sparse(b *testing.B) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(2), builder.WithUniformWeight(1, 100)},
		builder.RandomSparse(500, 0.01),
	)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.LongestBranch(g, "0")
	}
}
