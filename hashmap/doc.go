// Package hashmap provides Map, a generic hash table with separate chaining
// that serves as the node index of core.Graph.
//
// The table is an array of buckets; each bucket is a growable slice of
// Pair entries searched linearly for an exact key match.
//
//	bucket index = hash(key) % Cap()
//
// Contract:
//
//   - Keys are unique. Put on a present key fails with ErrDuplicateKey and
//     never overwrites the stored value.
//   - Nil keys (nil interface, pointer, map, chan or func values) are rejected
//     with ErrNilKey and are never reported as present.
//   - After an insertion, if Len()/Cap() >= MaxLoadFactor (0.8) the bucket
//     array doubles and every entry is re-placed into the new array. The
//     post-growth load factor is at most half of the trigger, so one growth
//     step always suffices.
//   - Clear drops every entry but keeps the current capacity.
//   - Keys and Range walk buckets in index order, then chain order. Callers
//     must not depend on that order.
//
// Hashing:
//
//	New uses hash/maphash.Comparable with a per-map random seed; it works for
//	any comparable key type. StringHasher (xxhash) is deterministic across
//	processes and is the hasher of choice for string-keyed maps whose bucket
//	order should be reproducible between runs.
//
// Complexity:
//
//   - Put, Get, Lookup, ContainsKey, Remove: O(1) amortized, O(n) worst case
//     for a degenerate hasher.
//   - Growth: O(n) per doubling, amortized O(1) per Put.
//   - Clear: O(Cap()). Keys, Range: O(Cap() + Len()).
//
// Concurrency:
//
//	A Map is not safe for concurrent use. Growth runs inside Put and is not
//	reentrant; callers that share a Map must serialize every call.
//
// Example:
//
//	m := hashmap.NewWithHasher[string, int](hashmap.StringHasher)
//	_ = m.Put("Union South", 1)
//	v, err := m.Get("Union South")
package hashmap
