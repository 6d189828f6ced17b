package loader_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/loader"
)

func ExampleLoad() {
	src := `digraph {
    "Library" -> "Union" [seconds=120];
    "Union" -> "Gym" [seconds=300.5];
}`
	g := core.NewStringGraph()
	st, err := loader.Load(strings.NewReader(src), g)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.Nodes())
	fmt.Printf("%+v\n", st)
	// Output:
	// [Library Union Gym]
	// {Lines:4 Edges:2 Skipped:2}
}
