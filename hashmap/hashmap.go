// SPDX-License-Identifier: MIT
// Package: campusnav/hashmap
//
// hashmap.go - Map operations: Put/Get/Lookup/ContainsKey/Remove/Clear,
// size queries, iteration and growth.
//
// Determinism:
//   - Keys()/Range() follow bucket index order, then chain order. With a
//     deterministic Hasher (StringHasher) the order is stable across runs.
//
// Concurrency:
//   - None. Every method assumes exclusive access by the caller.

package hashmap

import (
	"fmt"
	"reflect"
)

// Put inserts key→value.
//
// Implementation:
//   - Stage 1: Reject nil and unhashable keys (ErrNilKey, ErrInvalidKey).
//   - Stage 2: Scan the target chain; a match fails with ErrDuplicateKey.
//   - Stage 3: Append the pair and bump size.
//   - Stage 4: If Len()/Cap() >= MaxLoadFactor, double the bucket array.
//
// Errors:
//   - ErrNilKey, ErrInvalidKey, ErrDuplicateKey (wrapped with the key).
//
// Complexity:
//   - Time O(1) amortized, O(n) on the growth step.
func (m *Map[K, V]) Put(key K, value V) error {
	if err := checkKey(key); err != nil {
		return err
	}

	idx := m.indexOf(key)
	for _, p := range m.buckets[idx] {
		if p.Key == key {
			return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
		}
	}

	m.buckets[idx] = append(m.buckets[idx], Pair[K, V]{Key: key, Value: value})
	m.size++

	if m.LoadFactor() >= MaxLoadFactor {
		m.grow()
	}

	return nil
}

// Get returns the value stored under key.
// Errors: ErrNilKey, ErrInvalidKey, ErrKeyNotFound (wrapped with the key).
// Complexity: O(1) amortized.
func (m *Map[K, V]) Get(key K) (V, error) {
	var zero V
	if err := checkKey(key); err != nil {
		return zero, err
	}
	if v, ok := m.Lookup(key); ok {
		return v, nil
	}

	return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}

// Lookup is the comma-ok form of Get. Nil and unhashable keys report false.
func (m *Map[K, V]) Lookup(key K) (V, bool) {
	var zero V
	if checkKey(key) != nil {
		return zero, false
	}
	for _, p := range m.buckets[m.indexOf(key)] {
		if p.Key == key {
			return p.Value, true
		}
	}

	return zero, false
}

// ContainsKey reports whether key is present. Nil and unhashable keys report false.
func (m *Map[K, V]) ContainsKey(key K) bool {
	_, ok := m.Lookup(key)
	return ok
}

// Remove deletes key and returns the value it held.
//
// Implementation:
//   - Stage 1: Locate the chain and the pair position.
//   - Stage 2: Splice the pair out, preserving the order of the remaining chain.
//
// Errors: ErrNilKey, ErrInvalidKey, ErrKeyNotFound (wrapped with the key).
// Complexity: O(1) amortized. Capacity never shrinks.
func (m *Map[K, V]) Remove(key K) (V, error) {
	var zero V
	if err := checkKey(key); err != nil {
		return zero, err
	}

	idx := m.indexOf(key)
	chain := m.buckets[idx]
	for i, p := range chain {
		if p.Key != key {
			continue
		}
		copy(chain[i:], chain[i+1:])
		chain[len(chain)-1] = Pair[K, V]{} // release references held by the tail slot
		m.buckets[idx] = chain[:len(chain)-1]
		m.size--

		return p.Value, nil
	}

	return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}

// Clear removes every pair. Cap() is unchanged.
// Complexity: O(Cap()).
func (m *Map[K, V]) Clear() {
	for i := range m.buckets {
		m.buckets[i] = nil
	}
	m.size = 0
}

// Len returns the number of stored pairs.
func (m *Map[K, V]) Len() int { return m.size }

// Cap returns the current bucket count.
func (m *Map[K, V]) Cap() int { return len(m.buckets) }

// LoadFactor returns Len()/Cap().
func (m *Map[K, V]) LoadFactor() float64 {
	return float64(m.size) / float64(len(m.buckets))
}

// Keys returns every key in bucket order. The slice is freshly allocated.
// Complexity: O(Cap() + Len()).
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	for _, chain := range m.buckets {
		for _, p := range chain {
			keys = append(keys, p.Key)
		}
	}

	return keys
}

// Range calls fn for each pair in bucket order until fn returns false.
// fn must not mutate the Map.
func (m *Map[K, V]) Range(fn func(key K, value V) bool) {
	for _, chain := range m.buckets {
		for _, p := range chain {
			if !fn(p.Key, p.Value) {
				return
			}
		}
	}
}

// indexOf returns the bucket index for key under the current capacity.
func (m *Map[K, V]) indexOf(key K) int {
	return int(m.hash(key) % uint64(len(m.buckets)))
}

// grow doubles the bucket array and re-places every pair.
//
// Re-placement appends straight into the target chain: keys are already
// unique and the halved load factor cannot trigger another growth.
func (m *Map[K, V]) grow() {
	old := m.buckets
	m.buckets = make([]bucket[K, V], len(old)*growthFactor)
	for _, chain := range old {
		for _, p := range chain {
			idx := m.indexOf(p.Key)
			m.buckets[idx] = append(m.buckets[idx], p)
		}
	}
}

// checkKey rejects keys the index cannot store: nil references (ErrNilKey) and
// interface keys holding an incomparable dynamic value (ErrInvalidKey), which
// would otherwise panic in the hasher or in ==.
// Non-reference kinds (strings, numbers, plain structs, arrays) always pass.
func checkKey[K comparable](key K) error {
	v := any(key)
	if v == nil {
		return ErrNilKey
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer, reflect.Slice:
		if rv.IsNil() {
			return ErrNilKey
		}
	}
	if !rv.Comparable() {
		return fmt.Errorf("%w: %T", ErrInvalidKey, v)
	}

	return nil
}
