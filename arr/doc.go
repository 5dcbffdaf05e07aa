// Package arr provides standalone helper functions for Go slices and
// dot-notation access into nested map[string]any values.
//
// # Slice helpers
//
// All slice helpers are generic and operate on plain []T values. None of them
// mutate their input; every result is a fresh slice:
//
//	evens         := arr.Filter([]int{1, 2, 3, 4, 5}, func(n, _ int) bool { return n%2 == 0 })
//	chunks        := arr.Chunk([]int{1, 2, 3, 4, 5}, 2) // → [[1 2] [3 4] [5]]
//	hand, rest    := arr.SplitAt(deck, 5)
//	last, ok      := arr.At(deck, -1)
//
// # Dot-notation map access
//
// [Get], [Set], [Has], [Forget] and [Dot] address nested maps with
// dot-separated keys:
//
//	m := map[string]any{"user": map[string]any{"name": "Alice"}}
//	name, _ := arr.Get(m, "user.name") // → "Alice"
//	arr.Set(m, "user.age", 30)
//	flat := arr.Dot(m)                 // → {"user.name": "Alice", "user.age": 30}
package arr
