package fn

import (
	"fmt"

	"github.com/hasbyte1/go-fnkit/callable"
	"github.com/hasbyte1/go-fnkit/lambda"
)

// Invoker is anything [From] can build: a compiled [lambda.Lambda] or an
// adapted [callable.Object].
type Invoker interface {
	Invoke(args ...any) (any, error)
}

var (
	_ Invoker = (*lambda.Lambda)(nil)
	_ Invoker = (*callable.Object)(nil)
)

// From builds an [Invoker] from src, choosing the builder by its shape:
//
//   - string: compiled as a placeholder template by [lambda.Compile];
//   - []string: fragments zipped with fillers by [lambda.CompileFragments];
//   - callable.Props: adapted by [callable.From].
//
// Any other shape yields [ErrUnsupportedSource]. Compile and adaptation errors
// are passed through unchanged, so errors.Is works with
// [lambda.ErrInvalidExpression] and [callable.ErrNotCallable].
//
//	square, _ := fn.From("$ * $")
//	sum, _    := fn.From([]string{"$", "", "+ $$"})
//	count, _  := fn.From(callable.Props{"state": 0, callable.Key: incr})
func From(src any, fillers ...any) (Invoker, error) {
	var (
		inv Invoker
		err error
	)
	switch s := src.(type) {
	case string:
		l, e := lambda.Compile(s)
		inv, err = nonNil(l, e)
	case []string:
		l, e := lambda.CompileFragments(s, fillers...)
		inv, err = nonNil(l, e)
	case callable.Props:
		o, e := callable.From(s)
		inv, err = nonNil(o, e)
	default:
		err = fmt.Errorf("%w: %T", ErrUnsupportedSource, src)
	}
	return inv, err
}

// nonNil keeps a failed build from surfacing as a non-nil Invoker that
// wraps a nil pointer.
func nonNil[T Invoker](v T, err error) (Invoker, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Predicate lifts inv into a rule predicate. The result counts as a match
// when it is [lambda.Truthy]; an invocation error counts as no match.
func Predicate(inv Invoker) func(args ...any) bool {
	return func(args ...any) bool {
		v, err := inv.Invoke(args...)
		return err == nil && lambda.Truthy(v)
	}
}

// Handler lifts inv into a rule handler. An invocation error is returned as
// the handler's value, so callers that care should check for an error type.
func Handler(inv Invoker) func(args ...any) any {
	return func(args ...any) any {
		v, err := inv.Invoke(args...)
		if err != nil {
			return err
		}
		return v
	}
}
