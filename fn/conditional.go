package fn

import "github.com/go-logr/logr"

// Rule pairs a predicate with the handler to run when it matches. Both
// receive the arguments passed to the dispatcher.
type Rule[A, R any] struct {
	When func(args ...A) bool
	Then func(args ...A) R
}

// When builds a [Rule].
func When[A, R any](pred func(args ...A) bool, then func(args ...A) R) Rule[A, R] {
	return Rule[A, R]{When: pred, Then: then}
}

// Otherwise builds a catch-all [Rule] that always matches. Put it last.
func Otherwise[A, R any](then func(args ...A) R) Rule[A, R] {
	return Rule[A, R]{When: True[A], Then: then}
}

// Dispatcher runs an ordered rule table: the first rule whose predicate
// returns true handles the call. Its only state is the table, which is
// copied at construction.
type Dispatcher[A, R any] struct {
	rules []Rule[A, R]
	log   logr.Logger
}

// NewDispatcher builds a [Dispatcher] over rules, in order.
func NewDispatcher[A, R any](rules ...Rule[A, R]) *Dispatcher[A, R] {
	return &Dispatcher[A, R]{
		rules: append([]Rule[A, R](nil), rules...),
		log:   logr.Discard(),
	}
}

// WithLogger returns a copy of d that traces the matching rule at V(2).
func (d *Dispatcher[A, R]) WithLogger(log logr.Logger) *Dispatcher[A, R] {
	if log.GetSink() == nil {
		log = logr.Discard()
	}
	return &Dispatcher[A, R]{rules: d.rules, log: log.WithName("dispatcher")}
}

// Len is the number of rules.
func (d *Dispatcher[A, R]) Len() int { return len(d.rules) }

// Dispatch evaluates the predicates in order and returns the result of the
// first matching handler with true. When nothing matches it returns the zero
// R and false; that is a normal outcome, not an error.
func (d *Dispatcher[A, R]) Dispatch(args ...A) (R, bool) {
	for i, rule := range d.rules {
		if rule.When(args...) {
			d.log.V(2).Info("rule matched", "index", i)
			return rule.Then(args...), true
		}
	}
	d.log.V(2).Info("no rule matched", "rules", len(d.rules))
	var zero R
	return zero, false
}

// Conditional returns a function that dispatches its arguments over rules:
//
//	fizzbuzz := fn.Conditional(
//	    fn.When(func(n ...int) bool { return n[0]%15 == 0 }, fn.Constant[int, any]("FizzBuzz")),
//	    fn.When(func(n ...int) bool { return n[0]%5 == 0 }, fn.Constant[int, any]("Buzz")),
//	    fn.When(func(n ...int) bool { return n[0]%3 == 0 }, fn.Constant[int, any]("Fizz")),
//	    fn.Otherwise(func(n ...int) any { return n[0] }),
//	)
//	fizzbuzz(15) // "FizzBuzz", true
func Conditional[A, R any](rules ...Rule[A, R]) func(args ...A) (R, bool) {
	return NewDispatcher(rules...).Dispatch
}
