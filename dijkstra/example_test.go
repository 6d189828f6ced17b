// Package dijkstra_test provides runnable examples for the engine.
package dijkstra_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/dijkstra"
)

// ExampleShortestPath walks between three campus buildings.
func ExampleShortestPath() {
	g := core.NewStringGraph()
	for _, n := range []string{"Bascom Hall", "Memorial Union", "Union South"} {
		_, _ = g.AddNode(n)
	}
	_ = g.AddEdge("Bascom Hall", "Memorial Union", 180)
	_ = g.AddEdge("Memorial Union", "Union South", 420)
	_ = g.AddEdge("Bascom Hall", "Union South", 700)

	p, err := dijkstra.ShortestPath(g, "Bascom Hall", "Union South")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p.Nodes)
	fmt.Println(p.Weights, p.Cost)

	_, err = dijkstra.ShortestPath(g, "Union South", "Bascom Hall")
	fmt.Println(errors.Is(err, dijkstra.ErrPathNotFound))
	// Output:
	// [Bascom Hall Memorial Union Union South]
	// [180 420] 600
	// true
}

// ExampleLongestBranch finds the reachable destination with the longest route.
func ExampleLongestBranch() {
	g := core.NewStringGraph()
	for _, n := range []string{"Gate", "Lobby", "Stairs", "Roof"} {
		_, _ = g.AddNode(n)
	}
	_ = g.AddEdge("Gate", "Lobby", 30)
	_ = g.AddEdge("Lobby", "Stairs", 20)
	_ = g.AddEdge("Stairs", "Roof", 60)

	p, _ := dijkstra.LongestBranch(g, "Gate")
	fmt.Println(p.Nodes, p.Len())
	// Output: [Gate Lobby Stairs Roof] 4
}
