package fn_test

import (
	"fmt"
	"strings"

	"github.com/hasbyte1/go-fnkit/arr"
	"github.com/hasbyte1/go-fnkit/fn"
	"github.com/hasbyte1/go-fnkit/num"
)

func ExampleConditional() {
	fizzbuzz := fn.Conditional(
		fn.When(func(n ...int) bool { return n[0]%15 == 0 }, fn.Constant[int, any]("FizzBuzz")),
		fn.When(func(n ...int) bool { return n[0]%5 == 0 }, fn.Constant[int, any]("Buzz")),
		fn.When(func(n ...int) bool { return n[0]%3 == 0 }, fn.Constant[int, any]("Fizz")),
		fn.Otherwise(func(n ...int) any { return n[0] }),
	)
	out := arr.Map(num.Range(1, 16), func(n, _ int) string {
		v, _ := fizzbuzz(n)
		return fmt.Sprint(v)
	})
	fmt.Println(strings.Join(out, ", "))
	// Output: 1, 2, Fizz, 4, Buzz, Fizz, 7, 8, Fizz, Buzz, 11, Fizz, 13, 14, FizzBuzz
}

func ExampleFrom() {
	add, err := fn.From("$ + $$")
	if err != nil {
		panic(err)
	}
	v, _ := add.Invoke(2, 5)
	fmt.Println(v)
	// Output: 7
}
