package callable

import (
	"fmt"
	"strings"
	"sync"

	"github.com/imdario/mergo"
	"github.com/mitchellh/copystructure"

	"github.com/hasbyte1/go-fnkit/arr"
)

// Key is the reserved property holding a bag's invocation function.
const Key = "@callable"

// Props is a property bag. Nested bags are plain map[string]any values and
// are addressed with dot-separated keys.
type Props = map[string]any

// Func is the invocation function stored under [Key]. self is the bag the
// function was adapted with, so writes to self are visible to later calls
// and to [Object.Get].
type Func = func(self Props, args ...any) (any, error)

// Object is a property bag that can be invoked like a function.
//
// Invoke and every field accessor hold the same mutex, so an Object may be
// shared between goroutines. The invocation function runs while that mutex
// is held; it must work on self directly and never call back into the same
// Object, which would deadlock.
type Object struct {
	mu    sync.Mutex
	props Props
	call  Func
}

// From adapts props into an [Object]. props must hold a [Func] (or the
// error-less func(self Props, args ...any) any) under [Key]; otherwise
// [ErrNotCallable] is returned.
//
// The Object takes ownership of props: it is not copied, and callers should
// go through the Object from now on.
//
//	counter, _ := callable.From(callable.Props{
//	    "state": 0,
//	    callable.Key: func(self callable.Props, _ ...any) any {
//	        self["state"] = self["state"].(int) + 1
//	        return self["state"]
//	    },
//	})
//	counter.Invoke() // 1
//	counter.Invoke() // 2
func From(props Props) (*Object, error) {
	if props == nil {
		return nil, fmt.Errorf("%w: nil bag", ErrNotCallable)
	}
	var call Func
	switch fn := props[Key].(type) {
	case func(Props, ...any) (any, error):
		call = fn
	case func(Props, ...any) any:
		if fn != nil {
			call = func(self Props, args ...any) (any, error) { return fn(self, args...), nil }
		}
	case nil:
		return nil, fmt.Errorf("%w: missing %q", ErrNotCallable, Key)
	default:
		return nil, fmt.Errorf("%w: %q holds %T", ErrNotCallable, Key, fn)
	}
	if call == nil {
		return nil, fmt.Errorf("%w: %q holds a nil function", ErrNotCallable, Key)
	}
	return &Object{props: props, call: call}, nil
}

// Invoke calls the invocation function with the bag as self.
func (o *Object) Invoke(args ...any) (any, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.call(o.props, args...)
}

// Get reads the property at the dot-notation key.
func (o *Object) Get(key string) (any, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return arr.Get(o.props, key)
}

// Set writes the property at the dot-notation key, creating nested bags as
// needed. Neither the invocation function nor a path through it can be
// written.
func (o *Object) Set(key string, value any) error {
	if reserved(key) {
		return ErrReservedKey
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	arr.Set(o.props, key, value)
	return nil
}

// Has reports whether the dot-notation key exists.
func (o *Object) Has(key string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return arr.Has(o.props, key)
}

// Forget removes the property at the dot-notation key.
func (o *Object) Forget(key string) error {
	if reserved(key) {
		return ErrReservedKey
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	arr.Forget(o.props, key)
	return nil
}

// Fields returns every leaf property flattened to dot-notation keys,
// without the invocation function.
func (o *Object) Fields() map[string]any {
	o.mu.Lock()
	defer o.mu.Unlock()
	flat := arr.Dot(o.props)
	delete(flat, Key)
	return flat
}

// Snapshot returns a deep copy of the bag without the invocation function.
// Later changes to the Object do not show up in the copy.
func (o *Object) Snapshot() (Props, error) {
	o.mu.Lock()
	data := make(Props, len(o.props))
	for k, v := range o.props {
		if k != Key {
			data[k] = v
		}
	}
	cp, err := copystructure.Copy(data)
	o.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("callable: snapshot: %w", err)
	}
	return cp.(Props), nil
}

// Assign deep-merges src into the bag: nested bags are merged key by key,
// and any other value in src overwrites the existing one. src may not carry
// [Key].
//
//	obj.Assign(callable.Props{"meta": callable.Props{"b": 2}})
//	// {"meta": {"a": 1}} becomes {"meta": {"a": 1, "b": 2}}
func (o *Object) Assign(src Props) error {
	if _, ok := src[Key]; ok {
		return ErrReservedKey
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := mergo.Merge(&o.props, src, mergo.WithOverride); err != nil {
		return fmt.Errorf("callable: assign: %w", err)
	}
	return nil
}

// reserved reports whether key addresses [Key] or anything below it.
func reserved(key string) bool {
	head, _, _ := strings.Cut(key, ".")
	return head == Key
}
