// SPDX-License-Identifier: MIT
// Package: campusnav/hashmap
//
// types.go - sentinel errors, Map/Pair declarations, options and constructors.

package hashmap

import (
	"errors"
	"hash/maphash"
)

// Sentinel errors returned by Map operations. Callers branch with errors.Is;
// implementations attach the offending key with %w.
var (
	// ErrNilKey indicates a nil key (nil interface, pointer, map, chan or func).
	ErrNilKey = errors.New("hashmap: nil key")

	// ErrInvalidKey indicates a key whose dynamic value cannot be hashed or
	// compared, such as a slice stored in an interface key.
	ErrInvalidKey = errors.New("hashmap: invalid key")

	// ErrDuplicateKey indicates Put was called with a key that is already present.
	ErrDuplicateKey = errors.New("hashmap: duplicate key")

	// ErrKeyNotFound indicates Get or Remove was called with an absent key.
	ErrKeyNotFound = errors.New("hashmap: key not found")
)

const (
	// DefaultCapacity is the bucket count used when no WithCapacity option is given.
	DefaultCapacity = 64

	// MaxLoadFactor is the Len()/Cap() ratio that triggers a doubling after Put.
	MaxLoadFactor = 0.8

	// growthFactor multiplies the bucket count on every resize.
	growthFactor = 2
)

// Hasher maps a key to a 64-bit hash. It must be deterministic for the
// lifetime of the Map and consistent with ==.
type Hasher[K comparable] func(K) uint64

// Pair is one key/value association stored in a bucket.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// bucket is a chain of pairs sharing one bucket index.
type bucket[K comparable, V any] []Pair[K, V]

// Map is a generic hash table with separate chaining and load-factor growth.
// The zero value is not usable; construct with New or NewWithHasher.
type Map[K comparable, V any] struct {
	buckets []bucket[K, V] // len(buckets) == Cap()
	size    int            // number of stored pairs
	hash    Hasher[K]      // immutable after construction
}

// options collects construction-time knobs shared by every key/value type.
type options struct {
	capacity int
}

// Option configures a Map before creation.
type Option func(*options)

// WithCapacity sets the initial bucket count.
// Panics if n < 1: a table without buckets cannot place any key.
func WithCapacity(n int) Option {
	if n < 1 {
		panic("hashmap: WithCapacity(n) requires n >= 1")
	}
	return func(o *options) { o.capacity = n }
}

// New creates an empty Map hashed with maphash.Comparable under a fresh seed.
// Default capacity is DefaultCapacity buckets.
// Complexity: O(capacity).
func New[K comparable, V any](opts ...Option) *Map[K, V] {
	seed := maphash.MakeSeed()
	return NewWithHasher[K, V](func(k K) uint64 { return maphash.Comparable(seed, k) }, opts...)
}

// NewWithHasher creates an empty Map using h as its hash function.
// Panics if h is nil.
// Complexity: O(capacity).
func NewWithHasher[K comparable, V any](h Hasher[K], opts ...Option) *Map[K, V] {
	if h == nil {
		panic("hashmap: NewWithHasher(nil)")
	}
	o := options{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}

	return &Map[K, V]{
		buckets: make([]bucket[K, V], o.capacity),
		hash:    h,
	}
}
