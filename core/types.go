// Package core defines the weighted directed Graph store used by the
// shortest-path engine: node lifecycle, edge lifecycle and read-only queries.
//
// Nodes are indexed by a hashmap.Map keyed by the caller's node type K.
// Each node owns an adjacency record holding its outgoing edges in insertion
// order and the ids of the nodes that point at it, so removing a node drops
// every incident edge in O(deg) without scanning the whole graph.
//
// This file declares Edge, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrUnknownNode     - an operation referenced a node that is not present.
//	ErrEdgeNotFound    - the requested edge (or one of its endpoints) does not exist.
//	ErrNegativeWeight  - AddEdge was given a weight below zero.
//	ErrBadWeight       - AddEdge was given NaN or +Inf.
package core

import (
	"errors"

	"github.com/katalvlaran/campusnav/hashmap"
)

// Sentinel errors for core graph operations.
var (
	// ErrUnknownNode indicates an operation referenced a non-existent node.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeWeight indicates a weight below zero was supplied.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrBadWeight indicates a NaN or infinite weight was supplied.
	ErrBadWeight = errors.New("core: edge weight is not a finite number")
)

// Edge is a directed, weighted link From→To.
type Edge[K comparable] struct {
	// From is the source node ID.
	From K

	// To is the destination node ID.
	To K

	// Weight is the non-negative traversal cost.
	Weight float64
}

// adjacency is the per-node record stored in the node index.
//
// out keeps outgoing edges in insertion order; overwriting a weight keeps the
// edge in place. in lists each predecessor once, in the order its first edge
// into this node was added.
type adjacency[K comparable] struct {
	id  K
	seq uint64
	out []Edge[K]
	in  []K
}

// GraphOption configures a Graph before creation.
type GraphOption func(cfg *graphConfig)

// graphConfig holds construction-time settings. hasher is stored untyped so
// that options stay free of the key type parameter; NewGraph checks it.
type graphConfig struct {
	capacity int
	hasher   any
}

// WithNodeCapacity sets the initial bucket count of the node index.
// Panics if n < 1.
func WithNodeCapacity(n int) GraphOption {
	if n < 1 {
		panic("core: WithNodeCapacity(n) requires n >= 1")
	}
	return func(cfg *graphConfig) { cfg.capacity = n }
}

// WithHasher sets the hash function of the node index. NewGraph panics if
// the hasher's key type differs from the graph's.
func WithHasher[K comparable](h hashmap.Hasher[K]) GraphOption {
	if h == nil {
		panic("core: WithHasher(nil)")
	}
	return func(cfg *graphConfig) { cfg.hasher = h }
}

// Graph is a weighted directed graph keyed by K.
//
// A Graph is not safe for concurrent mutation. Queries are read-only, so any
// number of readers may run once the last writer has finished; callers that
// interleave loads and queries must provide that exclusion themselves.
type Graph[K comparable] struct {
	nodes   *hashmap.Map[K, *adjacency[K]]
	nextSeq uint64 // insertion sequence for the next new node
	edges   int    // number of stored edges
}

// NewGraph creates an empty Graph.
// By default the node index uses hashmap.New (maphash) with
// hashmap.DefaultCapacity buckets.
// Complexity: O(capacity).
func NewGraph[K comparable](opts ...GraphOption) *Graph[K] {
	cfg := graphConfig{capacity: hashmap.DefaultCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}

	mapOpts := []hashmap.Option{hashmap.WithCapacity(cfg.capacity)}
	var nodes *hashmap.Map[K, *adjacency[K]]
	if cfg.hasher == nil {
		nodes = hashmap.New[K, *adjacency[K]](mapOpts...)
	} else {
		h, ok := cfg.hasher.(hashmap.Hasher[K])
		if !ok {
			panic("core: WithHasher key type does not match graph key type")
		}
		nodes = hashmap.NewWithHasher[K, *adjacency[K]](h, mapOpts...)
	}

	return &Graph[K]{nodes: nodes}
}

// NewStringGraph creates a string-keyed Graph whose node index uses the
// deterministic xxhash-based hashmap.StringHasher.
func NewStringGraph(opts ...GraphOption) *Graph[string] {
	all := make([]GraphOption, 0, len(opts)+1)
	all = append(all, WithHasher[string](hashmap.StringHasher))
	all = append(all, opts...)

	return NewGraph[string](all...)
}

// NewIntGraph creates an int-keyed Graph whose node index uses the
// deterministic hashmap.IntHasher.
func NewIntGraph(opts ...GraphOption) *Graph[int] {
	all := make([]GraphOption, 0, len(opts)+1)
	all = append(all, WithHasher[int](hashmap.IntHasher))
	all = append(all, opts...)

	return NewGraph[int](all...)
}
