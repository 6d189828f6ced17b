// Package campusnav finds fastest walking routes across a campus map.
//
// The map is a weighted directed graph: nodes are location names and each
// edge carries the walking time in seconds. Everything above the data
// structures is a thin layer over them:
//
//	hashmap/     KeyedMap: chained buckets, 0.8 load factor, doubling
//	core/        Graph[K] node index and adjacency over hashmap.Map
//	dijkstra/    shortest paths, path data and cost, longest branch
//	bfs/         breadth-first reachability walk
//	builder/     deterministic graph fixtures for tests and benchmarks
//	loader/      "A" -> "B" [seconds=N]; edge-list reader
//	backend/     location service over one loaded map
//	frontend/    HTML prompt and response fragments
//	server/      HTTP routes, request IDs, health, metrics
//	config/, logging/, metrics/  process plumbing
//	cmd/campusnav  CLI and HTTP entry point
//
// Quick example:
//
//	g := core.NewStringGraph()
//	_, _ = g.AddNode("Memorial Union")
//	_, _ = g.AddNode("Science Hall")
//	_ = g.AddEdge("Memorial Union", "Science Hall", 105.8)
//	p, err := dijkstra.ShortestPath(g, "Memorial Union", "Science Hall")
//
// Or from a shell:
//
//	campusnav path -from "Memorial Union" -to "Union South"
package campusnav
