package rrbvec

import (
	"fmt"
	"iter"
)

// Builder accumulates elements and produces a Vector in one shot.
// Add calls are staged into a plain slice and only folded into a tree
// lazily, on Result or when an AddVector call interleaves a bulk
// concat, avoiding the per-call tree-rebuild cost of calling Append in
// a loop. A Builder is single-use: once Result has been called it is
// done.
//
// The zero value is a valid, empty Builder.
type Builder[T any] struct {
	staged []T
	acc    Vector[T]
	hasAcc bool
	done   bool
}

// NewBuilder returns an empty Builder.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{}
}

// Add appends a single element.
func (b *Builder[T]) Add(x T) error {
	if b.done {
		return fmt.Errorf("%w: Add", ErrBuilderDone)
	}
	b.staged = append(b.staged, x)
	return nil
}

// AddAll appends every element of seq, in order.
func (b *Builder[T]) AddAll(seq iter.Seq[T]) error {
	if b.done {
		return fmt.Errorf("%w: AddAll", ErrBuilderDone)
	}
	for x := range seq {
		b.staged = append(b.staged, x)
	}
	return nil
}

// AddSlice appends every element of xs, in order.
func (b *Builder[T]) AddSlice(xs []T) error {
	if b.done {
		return fmt.Errorf("%w: AddSlice", ErrBuilderDone)
	}
	b.staged = append(b.staged, xs...)
	return nil
}

// AddVector folds an entire vector's elements in via concatenation,
// rather than one Add per element.
func (b *Builder[T]) AddVector(v Vector[T]) error {
	if b.done {
		return fmt.Errorf("%w: AddVector", ErrBuilderDone)
	}
	b.flush()
	if !b.hasAcc {
		b.acc = v
		b.hasAcc = true
	} else {
		b.acc = b.acc.Concat(v)
	}
	return nil
}

// flush folds any staged elements into the accumulator.
func (b *Builder[E]) flush() {
	if len(b.staged) == 0 {
		return
	}
	T().Debugf("rrbvec: builder flushing %d staged elements", len(b.staged))
	built := FromSlice(b.staged)
	if !b.hasAcc {
		b.acc = built
		b.hasAcc = true
	} else {
		b.acc = b.acc.Concat(built)
	}
	b.staged = nil
}

// Result stabilizes the builder and returns the finished vector. The
// builder must not be used afterwards except via Clear.
func (b *Builder[T]) Result() Vector[T] {
	b.flush()
	b.done = true
	if !b.hasAcc {
		return Empty[T]()
	}
	return b.acc
}

// Clear resets the builder to its initial, empty, reusable state.
func (b *Builder[T]) Clear() {
	b.staged = nil
	b.acc = Vector[T]{}
	b.hasAcc = false
	b.done = false
}
