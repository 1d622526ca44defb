// Package lazylist implements a persistent, singly linked list
// whose tail is evaluated on demand and memoised.
//
// A List value is a cheap handle to a shared, immutable chain of cons cells.
// List operations never mutate existing cells, they build new ones,
// so any number of lists may share the same tail structure.
// Because evaluation is deferred until an element is actually needed,
// a List may as well be infinite, as long as the consumer only ever
// demands a finite prefix of it.
//
// The only mutation in the structure is the one-off
// unevaluated -> evaluated transition inside the backing thunk,
// which is guarded for concurrent use by the thunk package itself.
package lazylist

import (
	"iter"
	"slices"

	"go.llib.dev/lazykit/pkg/thunk"
)

// List is a handle to a lazily evaluated persistent list.
//
// The zero value of List is a valid empty list.
// Copying a List shares the underlying cells, it doesn't copy them.
// Two List values are == when they are handles to the very same cell.
type List[T any] struct {
	cell *thunk.Thunk[node[T]]
}

// node is either the end of the list (ok == false)
// or an element plus the handle of the remainder (ok == true).
type node[T any] struct {
	value T
	rest  List[T]
	ok    bool
}

// New returns an empty list.
func New[T any]() List[T] {
	return List[T]{cell: thunk.Of(node[T]{})}
}

// Singleton returns a list that contains a single element.
func Singleton[T any](v T) List[T] {
	return New[T]().Push(v)
}

// Cons returns a list whose first element is v
// and whose remainder is produced by the rest block when it is first needed.
// The rest block runs at most once; its result is memoised.
//
// Cons is what makes self-referential, infinite lists expressible:
//
//	var naturals func(n int) lazylist.List[int]
//	naturals = func(n int) lazylist.List[int] {
//		return lazylist.Cons(n, func() lazylist.List[int] { return naturals(n + 1) })
//	}
func Cons[T any](v T, rest func() List[T]) List[T] {
	return List[T]{cell: thunk.New(func() node[T] {
		return node[T]{value: v, rest: rest(), ok: true}
	})}
}

// FromSeq builds a list from a finite or infinite sequence.
// Elements are pulled from the sequence one at a time,
// each one when the cell at its position is first forced,
// so an infinite sequence is fine as long as the list
// is only ever consumed up to a finite prefix.
//
// The returned list assumes it is the only consumer of the sequence's pull state;
// it is therefore a single-use adaptation of seq,
// though the list itself stays restartable since every pulled element is memoised.
func FromSeq[T any](seq iter.Seq[T]) List[T] {
	next, stop := iter.Pull(seq)
	return FromPull(next, stop)
}

// FromPull builds a list from a pull function,
// calling next once per forced cell until it reports no more values.
// The stop functions are called after next reported the end of the values.
func FromPull[T any](next func() (T, bool), stops ...func()) List[T] {
	return List[T]{cell: thunk.New(func() node[T] {
		v, ok := next()
		if !ok {
			for _, stop := range stops {
				stop()
			}
			return node[T]{}
		}
		return node[T]{value: v, rest: FromPull(next, stops...), ok: true}
	})}
}

// FromSlice builds a list that contains the slice's elements in order.
func FromSlice[T any](vs []T) List[T] {
	return FromSeq(slices.Values(vs))
}

// Push returns a new list with v in the front.
// The receiver becomes the tail of the result as-is:
// the same shared cells, not a copy,
// and Push itself never forces the receiver.
func (l List[T]) Push(v T) List[T] {
	return List[T]{cell: thunk.Of(node[T]{value: v, rest: l, ok: true})}
}

// Head returns the first element of the list.
// On an empty list it reports false, which is the expected, non-exceptional outcome.
func (l List[T]) Head() (T, bool) {
	n := l.force()
	return n.value, n.ok
}

// Tail returns the list after the first element.
// On an empty list it reports false.
func (l List[T]) Tail() (List[T], bool) {
	n := l.force()
	return n.rest, n.ok
}

// Pop returns the first element together with the remainder of the list.
// It forces the front cell only once.
func (l List[T]) Pop() (T, List[T], bool) {
	n := l.force()
	return n.value, n.rest, n.ok
}

// IsEmpty reports whether the list has no elements.
// It forces the front cell.
func (l List[T]) IsEmpty() bool {
	return !l.force().ok
}

// Len returns the number of elements in the list.
// It walks and forces the whole chain on every call.
// On an infinite list Len never returns.
func (l List[T]) Len() int {
	var length int
	for range l.Iter() {
		length++
	}
	return length
}

// Iter returns the elements of the list in order, front to back.
// The sequence is lazy: cells are forced one by one as the consumer advances,
// and breaking out early leaves the cells past the last consumed element untouched.
// Each range over the sequence starts over from the front,
// with its own cursor, independent of any other iteration in flight.
func (l List[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		current := l
		for {
			n := current.force()
			if !n.ok {
				return
			}
			if !yield(n.value) {
				return
			}
			current = n.rest
		}
	}
}

// ToSlice collects every element of the list into a slice.
func (l List[T]) ToSlice() []T {
	var vs []T
	for v := range l.Iter() {
		vs = append(vs, v)
	}
	return vs
}

// Take returns the first n elements of the list,
// or all of them if the list is shorter than n.
// It forces no cell past the last collected element,
// which makes it safe to use on infinite lists.
func (l List[T]) Take(n int) []T {
	var vs []T
	current := l
	for 0 < n {
		v, rest, ok := current.Pop()
		if !ok {
			break
		}
		vs = append(vs, v)
		current = rest
		n--
	}
	return vs
}

// Map returns a list with every element of the input list transformed.
// The result is as lazy as the input:
// a cell of the input is forced and transformed
// only when the corresponding cell of the result is.
func Map[To any, From any](l List[From], transform func(From) To) List[To] {
	return List[To]{cell: thunk.New(func() node[To] {
		v, rest, ok := l.Pop()
		if !ok {
			return node[To]{}
		}
		return node[To]{value: transform(v), rest: Map(rest, transform), ok: true}
	})}
}

// Filter returns a list that keeps only the elements the filter selects.
// Forcing a cell of the result forces the input
// up to the next element that passes the filter, and no further.
// On an infinite list with no more matching elements past a point,
// forcing past that point never returns.
func Filter[T any](l List[T], filter func(T) bool) List[T] {
	return List[T]{cell: thunk.New(func() node[T] {
		current := l
		for {
			v, rest, ok := current.Pop()
			if !ok {
				return node[T]{}
			}
			if filter(v) {
				return node[T]{value: v, rest: Filter(rest, filter), ok: true}
			}
			current = rest
		}
	})}
}

// force resolves the handle's front cell.
// A zero List has no cell and reads as empty.
func (l List[T]) force() node[T] {
	if l.cell == nil {
		return node[T]{}
	}
	return l.cell.Force()
}
