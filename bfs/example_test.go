package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/campusnav/bfs"
	"github.com/katalvlaran/campusnav/core"
)

// ExampleWalk lists every building reachable from the library.
func ExampleWalk() {
	g := core.NewStringGraph()
	for _, n := range []string{"Library", "Union", "Gym", "Pool"} {
		_, _ = g.AddNode(n)
	}
	_ = g.AddEdge("Library", "Union", 120)
	_ = g.AddEdge("Union", "Gym", 300)
	_ = g.AddEdge("Pool", "Library", 45)

	res, _ := bfs.Walk(g, "Library")
	for _, id := range res.Order {
		fmt.Println(id, res.Depth[id])
	}
	// Output:
	// Library 0
	// Union 1
	// Gym 2
}
