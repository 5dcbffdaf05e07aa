// Package fn is a small functional toolkit: a first-match dispatcher, a
// single entry point for building callables, and the usual combinators.
//
// # Dispatch
//
// [Conditional] (or [NewDispatcher]) evaluates an ordered table of
// predicate/handler [Rule] values and runs the first handler whose predicate
// matches. When no rule matches the call reports false instead of failing,
// so tables normally end with [Otherwise]:
//
//	classify := fn.Conditional(
//	    fn.When(func(n ...int) bool { return n[0] < 0 }, fn.Constant[int]("negative")),
//	    fn.When(func(n ...int) bool { return n[0] == 0 }, fn.Constant[int]("zero")),
//	    fn.Otherwise(fn.Constant[int]("positive")),
//	)
//	kind, _ := classify(-3) // "negative"
//
// # Building callables
//
// [From] accepts a placeholder template, a slice of template fragments or a
// callable property bag and returns an [Invoker]. [Predicate] and [Handler]
// lift an Invoker into dispatcher rules, so compiled templates can drive a
// rule table directly:
//
//	even, _ := fn.From("$ % 2 == 0")
//	half, _ := fn.From("$ / 2")
//	halve := fn.Conditional(
//	    fn.When(fn.Predicate(even), fn.Handler(half)),
//	    fn.Otherwise(func(args ...any) any { return args[0] }),
//	)
package fn
