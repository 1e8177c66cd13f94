package rrbvec

import "iter"

// Iterator walks a Vector forward, once. It is exhausted after the
// last element has been returned; calling Next again yields
// ErrIteratorExhausted.
type Iterator[T any] struct {
	v    Vector[T]
	idx  int
	done bool
}

// Iterator returns a forward one-shot iterator over v.
func (v Vector[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{v: v}
}

// HasNext reports whether Next would return an element.
func (it *Iterator[T]) HasNext() bool {
	return !it.done && it.idx < it.v.length
}

// Next returns the next element, advancing the cursor.
func (it *Iterator[T]) Next() (T, error) {
	var zero T
	if !it.HasNext() {
		it.done = true
		return zero, ErrIteratorExhausted
	}
	x, _ := it.v.At(it.idx)
	it.idx++
	return x, nil
}

// ReverseIterator walks a Vector backward, once.
type ReverseIterator[T any] struct {
	v    Vector[T]
	idx  int
	done bool
}

// ReverseIterator returns a backward one-shot iterator over v.
func (v Vector[T]) ReverseIterator() *ReverseIterator[T] {
	return &ReverseIterator[T]{v: v, idx: v.length - 1}
}

// HasNext reports whether Next would return an element.
func (it *ReverseIterator[T]) HasNext() bool {
	return !it.done && it.idx >= 0
}

// Next returns the next element (in reverse order), advancing the
// cursor.
func (it *ReverseIterator[T]) Next() (T, error) {
	var zero T
	if !it.HasNext() {
		it.done = true
		return zero, ErrIteratorExhausted
	}
	x, _ := it.v.At(it.idx)
	it.idx--
	return x, nil
}

// All returns a Go 1.23 range-over-func sequence visiting every
// element in order. Additive to Iterator; both walk the same focus
// cache.
func (v Vector[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := v.Iterator()
		for it.HasNext() {
			x, _ := it.Next()
			if !yield(x) {
				return
			}
		}
	}
}

// Backward is the reverse-order counterpart of All.
func (v Vector[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := v.ReverseIterator()
		for it.HasNext() {
			x, _ := it.Next()
			if !yield(x) {
				return
			}
		}
	}
}
