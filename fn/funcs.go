package fn

import "sync"

// Identity returns v unchanged.
func Identity[T any](v T) T { return v }

// True always matches. It is the usual predicate of a default rule.
func True[A any](...A) bool { return true }

// False never matches.
func False[A any](...A) bool { return false }

// Noop ignores its arguments.
func Noop[A any](...A) {}

// Constant returns a function that ignores its arguments and returns v.
func Constant[A, R any](v R) func(args ...A) R {
	return func(...A) R { return v }
}

// Pipe feeds v into f. It reads left to right in a chain of calls:
//
//	fn.Pipe(fn.Pipe(deck, shuffle), deal)
func Pipe[T, R any](v T, f func(T) R) R { return f(v) }

// Partial fixes the first argument of a two-argument function.
//
//	add10 := fn.Partial(add, 10)
//	add10(5) // 15
func Partial[A, B, R any](f func(A, B) R, a A) func(B) R {
	return func(b B) R { return f(a, b) }
}

// Once wraps f so that it runs at most once; later calls return the first
// result. Safe for concurrent use.
func Once[R any](f func() R) func() R {
	var (
		once   sync.Once
		result R
	)
	return func() R {
		once.Do(func() { result = f() })
		return result
	}
}

// Memoize caches f's results by argument. Safe for concurrent use; f may run
// more than once for the same key when called concurrently.
func Memoize[K comparable, V any](f func(K) V) func(K) V {
	var (
		mu    sync.RWMutex
		cache = make(map[K]V)
	)
	return func(k K) V {
		mu.RLock()
		v, ok := cache[k]
		mu.RUnlock()
		if ok {
			return v
		}
		v = f(k)
		mu.Lock()
		cache[k] = v
		mu.Unlock()
		return v
	}
}

// FixedPoint ties the knot for an anonymous recursive function: f receives
// the function being defined and returns its body.
//
//	fact := fn.FixedPoint(func(self func(int) int) func(int) int {
//	    return func(n int) int {
//	        if n <= 1 {
//	            return 1
//	        }
//	        return n * self(n-1)
//	    }
//	})
//	fact(5) // 120
func FixedPoint[A, R any](f func(func(A) R) func(A) R) func(A) R {
	var self func(A) R
	self = func(a A) R { return f(self)(a) }
	return self
}
