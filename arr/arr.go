package arr

import (
	"math/rand"
	"sort"
)

// ─────────────────────────────────────────────────────────────────────────────
// Indexing
// ─────────────────────────────────────────────────────────────────────────────

// At returns the element at index i. Negative indices count back from the
// end, so At(items, -1) is the last element. Returns the zero value and false
// when i is out of range.
func At[T any](items []T, i int) (T, bool) {
	var zero T
	if i < 0 {
		i += len(items)
	}
	if i < 0 || i >= len(items) {
		return zero, false
	}
	return items[i], true
}

// AtMany picks the elements at each of indices (negative indices allowed).
// Out-of-range indices yield the zero value.
//
//	AtMany([]int{0, 1, 4, 9}, []int{1, -1}) // → [1 9]
func AtMany[T any](items []T, indices []int) []T {
	out := make([]T, len(indices))
	for k, i := range indices {
		out[k], _ = At(items, i)
	}
	return out
}

// Head returns the first element.
func Head[T any](items []T) (T, bool) { return At(items, 0) }

// Tail returns everything but the first element.
func Tail[T any](items []T) []T { return Drop(items, 1) }

// IsEmpty reports whether items has no elements.
func IsEmpty[T any](items []T) bool { return len(items) == 0 }

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn(item, index) to each element and returns a new slice.
func Map[T, U any](items []T, fn func(T, int) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item, i)
	}
	return out
}

// Filter returns elements for which fn(item, index) returns true.
func Filter[T any](items []T, fn func(T, int) bool) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return out
}

// Reduce reduces items to a single value of type U.
func Reduce[T, U any](items []T, fn func(U, T, int) U, initial U) U {
	result := initial
	for i, item := range items {
		result = fn(result, item, i)
	}
	return result
}

// FlatMap applies fn to each element (producing a []U) and flattens the results.
func FlatMap[T, U any](items []T, fn func(T, int) []U) []U {
	out := make([]U, 0, len(items))
	for i, item := range items {
		out = append(out, fn(item, i)...)
	}
	return out
}

// Flatten recursively flattens any nested []any structure.
func Flatten(items any) []any {
	out := make([]any, 0)
	var flatten func(v any)
	flatten = func(v any) {
		switch val := v.(type) {
		case []any:
			for _, elem := range val {
				flatten(elem)
			}
		default:
			out = append(out, val)
		}
	}
	flatten(items)
	return out
}

// Compact removes absent entries: nil values and empty strings. Unlike a
// JavaScript falsy filter, numeric zero and false are kept.
//
//	Compact([]any{"a", nil, "", 0, false}) // → ["a" 0 false]
func Compact[T any](items []T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		switch v := any(item).(type) {
		case nil:
			continue
		case string:
			if v == "" {
				continue
			}
		}
		out = append(out, item)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
// ─────────────────────────────────────────────────────────────────────────────

// Unique returns a new slice with duplicates removed, preserving the first
// occurrence.
func Unique[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; !ok {
			seen[item] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// Duplicates returns every element that occurs again later in items, in
// order of the earlier occurrence.
//
//	Duplicates([]int{1, 2, 1, 3, 1}) // → [1 1]
func Duplicates[T comparable](items []T) []T {
	out := make([]T, 0)
	for i, item := range items {
		for _, later := range items[i+1:] {
			if later == item {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// Except returns elements in a that are not in b.
func Except[T comparable](a, b []T) []T {
	set := make(map[T]struct{}, len(b))
	for _, item := range b {
		set[item] = struct{}{}
	}
	out := make([]T, 0)
	for _, item := range a {
		if _, found := set[item]; !found {
			out = append(out, item)
		}
	}
	return out
}

// Intersect returns the unique elements of a that also appear in b.
func Intersect[T comparable](a, b []T) []T {
	set := make(map[T]struct{}, len(b))
	for _, item := range b {
		set[item] = struct{}{}
	}
	out := make([]T, 0)
	for _, item := range Unique(a) {
		if _, found := set[item]; found {
			out = append(out, item)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Chunk splits items into consecutive groups of size.
// The last group may contain fewer than size elements.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return [][]T{}
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		end := min(i+size, len(items))
		chunk := make([]T, end-i)
		copy(chunk, items[i:end])
		chunks = append(chunks, chunk)
	}
	return chunks
}

// Take returns a copy of the first n elements.
func Take[T any](items []T, n int) []T {
	n = max(0, min(n, len(items)))
	out := make([]T, n)
	copy(out, items[:n])
	return out
}

// Drop returns a copy of items without the first n elements.
func Drop[T any](items []T, n int) []T {
	n = max(0, min(n, len(items)))
	out := make([]T, len(items)-n)
	copy(out, items[n:])
	return out
}

// SplitAt splits items into [0, i) and [i, len). i is clamped into range.
func SplitAt[T any](items []T, i int) ([]T, []T) {
	return Take(items, i), Drop(items, i)
}

// Rotate moves the first n elements to the end. n is taken modulo len(items);
// negative n rotates the other way.
//
//	Rotate([]int{1, 2, 3, 4}, 1) // → [2 3 4 1]
func Rotate[T any](items []T, n int) []T {
	if len(items) == 0 {
		return []T{}
	}
	n %= len(items)
	if n < 0 {
		n += len(items)
	}
	out := make([]T, 0, len(items))
	out = append(out, items[n:]...)
	return append(out, items[:n]...)
}

// Reverse returns a reversed copy of items.
func Reverse[T any](items []T) []T {
	n := len(items)
	out := make([]T, n)
	for i, item := range items {
		out[n-1-i] = item
	}
	return out
}

// Partition splits items into two slices: those satisfying fn and those that do not.
func Partition[T any](items []T, fn func(T) bool) ([]T, []T) {
	pass := make([]T, 0)
	fail := make([]T, 0)
	for _, item := range items {
		if fn(item) {
			pass = append(pass, item)
		} else {
			fail = append(fail, item)
		}
	}
	return pass, fail
}

// GroupBy groups items by a comparable key K extracted by fn.
func GroupBy[T any, K comparable](items []T, fn func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, item := range items {
		k := fn(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}

// ─────────────────────────────────────────────────────────────────────────────
// Zipping
// ─────────────────────────────────────────────────────────────────────────────

// Pair holds two values of possibly different types.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip pairs elements from a and b at the same index.
// Stops at the length of the shorter slice.
func Zip[A, B any](a []A, b []B) []Pair[A, B] {
	n := min(len(a), len(b))
	out := make([]Pair[A, B], n)
	for i := 0; i < n; i++ {
		out[i] = Pair[A, B]{First: a[i], Second: b[i]}
	}
	return out
}

// ZipLongest pairs elements from a and b at the same index, running to the
// length of the longer slice and filling the gaps with zero values.
func ZipLongest[A, B any](a []A, b []B) []Pair[A, B] {
	n := max(len(a), len(b))
	out := make([]Pair[A, B], n)
	for i := 0; i < n; i++ {
		if i < len(a) {
			out[i].First = a[i]
		}
		if i < len(b) {
			out[i].Second = b[i]
		}
	}
	return out
}

// CartesianProduct returns every combination taking one element from each
// of sets, in lexicographic order of the input positions.
//
//	CartesianProduct([]any{"♠", "♥"}, []any{2, 3})
//	// → [[♠ 2] [♠ 3] [♥ 2] [♥ 3]]
func CartesianProduct[T any](sets ...[]T) [][]T {
	if len(sets) == 0 {
		return [][]T{}
	}
	out := [][]T{{}}
	for _, set := range sets {
		next := make([][]T, 0, len(out)*len(set))
		for _, prefix := range out {
			for _, item := range set {
				combo := make([]T, len(prefix), len(prefix)+1)
				copy(combo, prefix)
				next = append(next, append(combo, item))
			}
		}
		out = next
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Sorting & Randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Sort returns a sorted copy of items using less.
func Sort[T any](items []T, less func(a, b T) bool) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// Shuffle returns a randomly shuffled copy of items.
func Shuffle[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// ShuffleWith is [Shuffle] driven by r, for reproducible orderings.
func ShuffleWith[T any](items []T, r *rand.Rand) []T {
	out := make([]T, len(items))
	copy(out, items)
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
