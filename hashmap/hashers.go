package hashmap

import "github.com/cespare/xxhash/v2"

// StringHasher hashes strings with xxhash64. It is seed-free, so bucket order
// for a given insertion sequence is identical across processes.
func StringHasher(s string) uint64 { return xxhash.Sum64String(s) }

// IntHasher hashes ints by their little-endian bytes with xxhash64.
func IntHasher(n int) uint64 {
	var b [8]byte
	u := uint64(n)
	for i := range b {
		b[i] = byte(u >> (8 * i))
	}

	return xxhash.Sum64(b[:])
}
