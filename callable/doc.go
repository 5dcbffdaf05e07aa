// Package callable turns a property bag into a value that is both data and a
// function.
//
// A bag is a [Props] map that stores its invocation function under the
// reserved [Key]. [From] adapts it into an [Object]: calling
// [Object.Invoke] runs the function with the bag itself as the receiver,
// while [Object.Get] and [Object.Set] read and write the same bag. State
// written by one invocation is visible to the next one and to direct reads:
//
//	counter, err := callable.From(callable.Props{
//	    "state": 0,
//	    callable.Key: func(self callable.Props, _ ...any) any {
//	        self["state"] = self["state"].(int) + 1
//	        return self["state"]
//	    },
//	})
//	counter.Invoke()            // 1
//	counter.Invoke()            // 2
//	state, _ := counter.Get("state") // 2
//
// A bag without a function under [Key] is rejected with [ErrNotCallable] at
// adaptation time, so an Object is always invokable.
package callable
