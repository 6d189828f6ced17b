package hashmap_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/campusnav/hashmap"
)

// ExampleMap shows insertion, duplicate rejection and growth.
func ExampleMap() {
	m := hashmap.NewWithHasher[string, float64](hashmap.StringHasher, hashmap.WithCapacity(4))

	// 1) Three inserts keep the load factor at 0.75.
	_ = m.Put("Bascom Hall", 1)
	_ = m.Put("Memorial Union", 2)
	_ = m.Put("Union South", 3)
	fmt.Println("len:", m.Len(), "cap:", m.Cap())

	// 2) A duplicate key is rejected, never overwritten.
	err := m.Put("Union South", 42)
	fmt.Println("duplicate:", errors.Is(err, hashmap.ErrDuplicateKey))

	// 3) The fourth insert reaches 0.8 and doubles the table.
	_ = m.Put("Van Vleck", 4)
	fmt.Println("len:", m.Len(), "cap:", m.Cap())

	v, _ := m.Get("Union South")
	fmt.Println("Union South:", v)

	// Output:
	// len: 3 cap: 4
	// duplicate: true
	// len: 4 cap: 8
	// Union South: 3
}
