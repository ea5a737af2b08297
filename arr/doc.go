// Package arr provides the raw-sequence helpers and the key-path resolver
// used by package collections.
//
// # Sequence helpers
//
// The generic helpers operate on plain []T values:
//
//	first, ok := arr.First([]int{1, 2, 3}, func(n int) bool { return n > 1 }) // → 2, true
//	items := arr.Wrap("solo")                                                  // → []any{"solo"}
//	sample := arr.Random([]string{"a", "b", "c"}, 2, rand.New(rand.NewPCG(1, 2)))
//
// # Key paths
//
// [DataGet] resolves dotted paths against nested maps, slices, structs,
// ordered maps and anything implementing [Accessor]:
//
//	arr.DataGet(order, "customer.address.city")
//	arr.DataGet(order, "lines.0.sku", "unknown")
//
// Missing segments never fail; they yield the default.
package arr
