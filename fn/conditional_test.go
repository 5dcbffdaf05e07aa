package fn_test

import (
	"math/rand"
	"testing"

	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-fnkit/arr"
	"github.com/hasbyte1/go-fnkit/fn"
	"github.com/hasbyte1/go-fnkit/num"
)

func multipleOf(k int) func(n ...int) bool {
	return func(n ...int) bool { return n[0]%k == 0 }
}

func fizzbuzz() func(n ...int) (any, bool) {
	return fn.Conditional(
		fn.When(multipleOf(15), fn.Constant[int, any]("FizzBuzz")),
		fn.When(multipleOf(5), fn.Constant[int, any]("Buzz")),
		fn.When(multipleOf(3), fn.Constant[int, any]("Fizz")),
		fn.When(fn.True[int], func(n ...int) any { return n[0] }),
	)
}

func TestFizzBuzz(t *testing.T) {
	dispatch := fizzbuzz()
	got := arr.Map(num.Range(1, 16), func(n, _ int) any {
		v, ok := dispatch(n)
		require.True(t, ok)
		return v
	})
	want := []any{1, 2, "Fizz", 4, "Buzz", "Fizz", 7, 8, "Fizz", "Buzz", 11, "Fizz", 13, 14, "FizzBuzz"}
	assert.Equal(t, want, got)
}

func TestEmptyTableNeverMatches(t *testing.T) {
	dispatch := fn.Conditional[int, string]()
	for _, n := range []int{0, 1, -7} {
		v, ok := dispatch(n)
		assert.False(t, ok)
		assert.Zero(t, v)
	}
}

func TestNoMatchIsNotAnError(t *testing.T) {
	dispatch := fn.Conditional(
		fn.When(multipleOf(2), fn.Constant[int]("even")),
	)
	v, ok := dispatch(3)
	assert.False(t, ok)
	assert.Equal(t, "", v)
}

func TestFirstMatchWinsAndStopsEvaluating(t *testing.T) {
	var evaluated []int
	probe := func(i int, result bool) func(...int) bool {
		return func(...int) bool {
			evaluated = append(evaluated, i)
			return result
		}
	}
	dispatch := fn.Conditional(
		fn.When(probe(0, false), fn.Constant[int]("zero")),
		fn.When(probe(1, true), fn.Constant[int]("one")),
		fn.When(probe(2, true), fn.Constant[int]("two")),
	)

	v, ok := dispatch(42)
	require.True(t, ok)
	assert.Equal(t, "one", v)
	assert.Equal(t, []int{0, 1}, evaluated)
}

func TestDispatchIsIdempotentForPureRules(t *testing.T) {
	dispatch := fizzbuzz()
	first, _ := dispatch(30)
	second, _ := dispatch(30)
	assert.Equal(t, first, second)
}

func TestRulesSeeEveryArgument(t *testing.T) {
	var merge func(a, b []int) []int
	table := fn.NewDispatcher(
		fn.When(
			func(l ...[]int) bool { return len(l[0]) == 0 || len(l[1]) == 0 },
			func(l ...[]int) []int { return append(append([]int{}, l[0]...), l[1]...) },
		),
		fn.When(
			func(l ...[]int) bool { return l[0][0] <= l[1][0] },
			func(l ...[]int) []int { return append([]int{l[0][0]}, merge(l[0][1:], l[1])...) },
		),
		fn.Otherwise(func(l ...[]int) []int { return merge(l[1], l[0]) }),
	)
	merge = func(a, b []int) []int {
		out, _ := table.Dispatch(a, b)
		return out
	}

	var mergeSort func([]int) []int
	mergeSort = func(l []int) []int {
		if len(l) <= 1 {
			return l
		}
		left, right := arr.SplitAt(l, len(l)/2)
		return merge(mergeSort(left), mergeSort(right))
	}

	shuffled := arr.ShuffleWith(append(num.Range(10), 3, 3), rand.New(rand.NewSource(1)))
	assert.Equal(t, []int{0, 1, 2, 3, 3, 3, 4, 5, 6, 7, 8, 9}, mergeSort(shuffled))
	assert.Equal(t, 3, table.Len())
}

func TestDispatcherWithLogger(t *testing.T) {
	d := fn.NewDispatcher(
		fn.When(multipleOf(2), fn.Constant[int]("even")),
	).WithLogger(testr.NewWithOptions(t, testr.Options{Verbosity: 2}))

	v, ok := d.Dispatch(4)
	assert.True(t, ok)
	assert.Equal(t, "even", v)

	_, ok = d.Dispatch(5)
	assert.False(t, ok)
}

func TestDispatcherCopiesRuleTable(t *testing.T) {
	rules := []fn.Rule[int, string]{fn.When(multipleOf(2), fn.Constant[int]("even"))}
	dispatch := fn.Conditional(rules...)
	rules[0] = fn.Otherwise(fn.Constant[int]("replaced"))

	v, _ := dispatch(2)
	assert.Equal(t, "even", v)
}
