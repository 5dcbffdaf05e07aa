package fn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-fnkit/arr"
	"github.com/hasbyte1/go-fnkit/callable"
	"github.com/hasbyte1/go-fnkit/fn"
	"github.com/hasbyte1/go-fnkit/lambda"
	"github.com/hasbyte1/go-fnkit/num"
)

func TestFromTemplate(t *testing.T) {
	square, err := fn.From("$ * $")
	require.NoError(t, err)
	require.IsType(t, &lambda.Lambda{}, square)
	assert.Equal(t, 1, square.(*lambda.Lambda).Arity())

	v, err := square.Invoke(3)
	require.NoError(t, err)
	assert.Equal(t, 9, v)
}

func TestFromFragments(t *testing.T) {
	add, err := fn.From([]string{"$", "", "+ $$"})
	require.NoError(t, err)

	v, err := add.Invoke(2, 5)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	scaled, err := fn.From([]string{"$ * ", ""}, 3)
	require.NoError(t, err)
	v, err = scaled.Invoke(4)
	require.NoError(t, err)
	assert.Equal(t, 12, v)
}

func TestFromProps(t *testing.T) {
	count, err := fn.From(callable.Props{
		"state": 0,
		callable.Key: func(self callable.Props, _ ...any) any {
			self["state"] = self["state"].(int) + 1
			return self["state"]
		},
	})
	require.NoError(t, err)

	for want := 1; want <= 3; want++ {
		v, err := count.Invoke()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
	state, _ := count.(*callable.Object).Get("state")
	assert.Equal(t, 3, state)
}

func TestFromErrors(t *testing.T) {
	inv, err := fn.From("$ ++ $")
	assert.ErrorIs(t, err, lambda.ErrInvalidExpression)
	assert.Nil(t, inv)

	inv, err = fn.From(callable.Props{})
	assert.ErrorIs(t, err, callable.ErrNotCallable)
	assert.Nil(t, inv)

	inv, err = fn.From(42)
	assert.ErrorIs(t, err, fn.ErrUnsupportedSource)
	assert.Nil(t, inv)
}

func TestLambdasDriveTheDispatcher(t *testing.T) {
	rule := func(pred, then string) fn.Rule[any, any] {
		p, err := fn.From(pred)
		require.NoError(t, err)
		h, err := fn.From(then)
		require.NoError(t, err)
		return fn.When(fn.Predicate(p), fn.Handler(h))
	}
	fizzbuzz := fn.Conditional(
		rule("$ % 15 == 0", `"FizzBuzz"`),
		rule("$ % 5 == 0", `"Buzz"`),
		rule("$ % 3 == 0", `"Fizz"`),
		rule("true", "$"),
	)

	got := arr.Map(num.Range(1, 16), func(n, _ int) any {
		v, _ := fizzbuzz(n)
		return v
	})
	want := []any{1, 2, "Fizz", 4, "Buzz", "Fizz", 7, 8, "Fizz", "Buzz", 11, "Fizz", 13, 14, "FizzBuzz"}
	assert.Equal(t, want, got)
}

func TestPredicateTreatsErrorsAsNoMatch(t *testing.T) {
	p, err := fn.From("$ > 2")
	require.NoError(t, err)
	pred := fn.Predicate(p)

	assert.True(t, pred(3))
	assert.False(t, pred(1))
	assert.False(t, pred("not a number"))
}

func TestHandlerReturnsErrors(t *testing.T) {
	h, err := fn.From("$ * 2")
	require.NoError(t, err)
	handle := fn.Handler(h)

	assert.Equal(t, 8, handle(4))
	out := handle([]any{1})
	assert.ErrorIs(t, out.(error), lambda.ErrEvaluation)
}
