package arr_test

import (
	"fmt"

	"github.com/hasbyte1/go-fnkit/arr"
)

func ExampleFilter() {
	evens := arr.Filter([]int{1, 2, 3, 4, 5}, func(n, _ int) bool { return n%2 == 0 })
	fmt.Println(evens)
	// Output: [2 4]
}

func ExampleChunk() {
	for _, c := range arr.Chunk([]int{1, 2, 3, 4, 5}, 2) {
		fmt.Println(c)
	}
	// Output:
	// [1 2]
	// [3 4]
	// [5]
}

func ExampleSplitAt() {
	hand, rest := arr.SplitAt([]string{"A♠", "K♥", "7♦", "2♣"}, 2)
	fmt.Println(hand, rest)
	// Output: [A♠ K♥] [7♦ 2♣]
}

func ExampleCartesianProduct() {
	for _, card := range arr.CartesianProduct([]string{"♠", "♥"}, []string{"J", "Q"}) {
		fmt.Println(card[1] + card[0])
	}
	// Output:
	// J♠
	// Q♠
	// J♥
	// Q♥
}

func ExampleCompact() {
	fmt.Println(arr.Compact([]any{"$", "", nil, 0, "+ $$"}))
	// Output: [$ 0 + $$]
}

func ExampleGet() {
	m := map[string]any{
		"user": map[string]any{
			"address": map[string]any{"city": "London"},
		},
	}
	city, _ := arr.Get(m, "user.address.city")
	fmt.Println(city)
	// Output: London
}
