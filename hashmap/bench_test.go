package hashmap_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/campusnav/hashmap"
)

// BenchmarkPut_String measures insertion including growth from the default capacity.
func BenchmarkPut_String(b *testing.B) {
	const n = 4096
	keys := make([]string, n)
	for i := range keys {
		keys[i] = "node-" + strconv.Itoa(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := hashmap.NewWithHasher[string, int](hashmap.StringHasher)
		for j, k := range keys {
			_ = m.Put(k, j)
		}
	}
}

// BenchmarkLookup_Comparable measures hits on a maphash-backed map.
func BenchmarkLookup_Comparable(b *testing.B) {
	const n = 4096
	m := hashmap.New[int, int]()
	for i := 0; i < n; i++ {
		_ = m.Put(i, i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Lookup(i % n)
	}
}
