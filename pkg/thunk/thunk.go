// Package thunk provides a deferred computation with a memoised result.
package thunk

import (
	"sync"
)

// New creates a Thunk from an init block.
// The init block is not called until the first Force.
func New[V any](init func() V) *Thunk[V] {
	return &Thunk[V]{init: init}
}

// Of creates an already evaluated Thunk that holds the given value.
func Of[V any](v V) *Thunk[V] {
	return &Thunk[V]{value: v, done: true}
}

// Thunk is a deferred computation with a memoised result.
// The computation runs at most once over the Thunk's lifetime,
// no matter how many times or from how many goroutines Force is called.
type Thunk[V any] struct {
	init func() V

	value V
	done  bool
	lock  sync.RWMutex
}

// Force evaluates the thunk.
// On the first call it runs the init block, caches its result and discards the init block;
// every further call returns the cached value without running anything.
//
// If the init block panics, the panic propagates to the caller of Force,
// the thunk remains unevaluated, and a later Force will run the init block again.
func (t *Thunk[V]) Force() V {
	if v, ok := t.lookup(); ok {
		return v
	}
	return t.eval()
}

// IsEvaluated reports whether the thunk was already forced.
// It never triggers evaluation.
func (t *Thunk[V]) IsEvaluated() bool {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.done
}

func (t *Thunk[V]) lookup() (V, bool) {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.value, t.done
}

func (t *Thunk[V]) eval() V {
	t.lock.Lock()
	defer t.lock.Unlock()
	if t.done {
		return t.value
	}
	t.value = t.init()
	t.done = true
	t.init = nil
	return t.value
}
