package rrbvec

import (
	"fmt"

	"github.com/npillmayer/rrbvec/internal/trie"
)

// Vector is a persistent, immutable indexed sequence with branching
// factor 32. The zero value is a valid empty vector. Every mutating
// operation returns a new Vector; the source is left untouched and
// keeps sharing whatever structure the two versions have in common.
//
// A Vector value is not safe to use from more than one goroutine at a
// time: reads lazily reposition a shared focus cache (see
// internal/trie.Pointer), so two goroutines holding copies of the same
// Vector must not call methods on it concurrently.
type Vector[T any] struct {
	length int
	root   *trie.Node[T]
	depth  int
	ptr    *trie.Pointer[T]
}

// Empty returns the empty vector of element type T.
func Empty[T any]() Vector[T] {
	return Vector[T]{ptr: &trie.Pointer[T]{}}
}

// Singleton returns a one-element vector.
func Singleton[T any](v T) Vector[T] {
	return Vector[T]{length: 1, root: trie.NewLeaf([]T{v}), depth: 1, ptr: &trie.Pointer[T]{}}
}

// New builds a vector from a fixed list of elements. It is equivalent
// to building with a Builder and is the idiomatic Go-literal
// constructor, e.g. rrbvec.New(1, 2, 3).
func New[T any](xs ...T) Vector[T] {
	return FromSlice(xs)
}

// FromSlice builds a vector from xs in O(len(xs)) by chunking directly
// into leaves and grouping bottom-up, rather than one Append at a
// time.
func FromSlice[T any](xs []T) Vector[T] {
	if len(xs) == 0 {
		return Empty[T]()
	}
	leaves := make([]*trie.Node[T], 0, (len(xs)+trie.Width-1)/trie.Width)
	for i := 0; i < len(xs); i += trie.Width {
		end := i + trie.Width
		if end > len(xs) {
			end = len(xs)
		}
		leaf := make([]T, end-i)
		copy(leaf, xs[i:end])
		leaves = append(leaves, trie.NewLeaf(leaf))
	}
	depth := 1
	level := leaves
	for len(level) > 1 {
		level = trie.Regroup(level, depth)
		depth++
	}
	return Vector[T]{length: len(xs), root: level[0], depth: depth, ptr: &trie.Pointer[T]{}}
}

func (v Vector[T]) derive(root *trie.Node[T], depth, length int) Vector[T] {
	return Vector[T]{length: length, root: root, depth: depth, ptr: &trie.Pointer[T]{}}
}

// Len returns the number of elements.
func (v Vector[T]) Len() int { return v.length }

// IsEmpty reports whether the vector holds no elements.
func (v Vector[T]) IsEmpty() bool { return v.length == 0 }

// At returns the element at index i.
func (v Vector[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= v.length {
		return zero, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfBounds, i, v.length)
	}
	return v.ptr.Get(v.root, v.depth, i), nil
}

// Updated returns a new vector with the element at index i replaced by
// x. Every node off the path to i is shared with the source.
func (v Vector[T]) Updated(i int, x T) (Vector[T], error) {
	if i < 0 || i >= v.length {
		return Vector[T]{}, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfBounds, i, v.length)
	}
	newRoot := trie.Updated(v.root, v.depth, i, x)
	return v.derive(newRoot, v.depth, v.length), nil
}

// Append returns a new vector with x added at the end.
func (v Vector[T]) Append(x T) Vector[T] {
	if v.length == 0 {
		return Singleton(x)
	}
	v.ptr.FocusOn(v.root, v.depth, v.length-1)
	if len(v.ptr.Display0) < trie.Width {
		newLeaf := make([]T, len(v.ptr.Display0)+1)
		copy(newLeaf, v.ptr.Display0)
		newLeaf[len(v.ptr.Display0)] = x
		newRoot := trie.ReplaceLastLeaf(v.root, v.depth, trie.NewLeaf(newLeaf))
		return v.derive(newRoot, v.depth, v.length+1)
	}
	newRoot, newDepth := trie.AppendLeaf(v.root, v.depth, trie.NewLeaf([]T{x}))
	return v.derive(newRoot, newDepth, v.length+1)
}

// Prepend returns a new vector with x added at the front.
func (v Vector[T]) Prepend(x T) Vector[T] {
	if v.length == 0 {
		return Singleton(x)
	}
	v.ptr.FocusOn(v.root, v.depth, 0)
	if len(v.ptr.Display0) < trie.Width {
		newLeaf := make([]T, len(v.ptr.Display0)+1)
		newLeaf[0] = x
		copy(newLeaf[1:], v.ptr.Display0)
		newRoot := trie.ReplaceFirstLeaf(v.root, v.depth, trie.NewLeaf(newLeaf))
		return v.derive(newRoot, v.depth, v.length+1)
	}
	newRoot, newDepth := trie.PrependLeaf(v.root, v.depth, trie.NewLeaf([]T{x}))
	return v.derive(newRoot, newDepth, v.length+1)
}

func (v Vector[T]) sliceInternal(lo, hi int) Vector[T] {
	newRoot, newDepth := trie.SliceRange(v.root, v.depth, lo, hi)
	return v.derive(newRoot, newDepth, hi-lo)
}

// Take returns a vector of the first n elements (or the whole vector
// if n >= Len()).
func (v Vector[T]) Take(n int) Vector[T] {
	if n <= 0 {
		return Empty[T]()
	}
	if n >= v.length {
		return v
	}
	return v.sliceInternal(0, n)
}

// Drop returns a vector with the first n elements removed.
func (v Vector[T]) Drop(n int) Vector[T] {
	if n <= 0 {
		return v
	}
	if n >= v.length {
		return Empty[T]()
	}
	return v.sliceInternal(n, v.length)
}

// TakeRight returns a vector of the last n elements.
func (v Vector[T]) TakeRight(n int) Vector[T] {
	if n <= 0 {
		return Empty[T]()
	}
	if n >= v.length {
		return v
	}
	return v.sliceInternal(v.length-n, v.length)
}

// DropRight returns a vector with the last n elements removed.
func (v Vector[T]) DropRight(n int) Vector[T] {
	if n <= 0 {
		return v
	}
	if n >= v.length {
		return Empty[T]()
	}
	return v.sliceInternal(0, v.length-n)
}

// Slice returns the half-open range [from, until), clamped to the
// vector's bounds.
func (v Vector[T]) Slice(from, until int) Vector[T] {
	if from < 0 {
		from = 0
	}
	if until > v.length {
		until = v.length
	}
	if from >= until {
		return Empty[T]()
	}
	return v.sliceInternal(from, until)
}

// SplitAt returns (Take(n), Drop(n)).
func (v Vector[T]) SplitAt(n int) (Vector[T], Vector[T]) {
	return v.Take(n), v.Drop(n)
}

// Concat returns the concatenation of v and other. Only the nodes
// along the boundary between the two trees are rebuilt; the rest is
// shared with both sources.
func (v Vector[E]) Concat(other Vector[E]) Vector[E] {
	if v.length == 0 {
		return other
	}
	if other.length == 0 {
		return v
	}
	T().Debugf("rrbvec: concat %d elements with %d elements", v.length, other.length)
	newRoot, newDepth := trie.ConcatTrees(v.root, v.depth, other.root, other.depth)
	return v.derive(newRoot, newDepth, v.length+other.length)
}

// Head returns the first element.
func (v Vector[T]) Head() (T, error) {
	var zero T
	if v.length == 0 {
		return zero, fmt.Errorf("%w: Head", ErrEmptyVector)
	}
	x, _ := v.At(0)
	return x, nil
}

// Last returns the final element.
func (v Vector[T]) Last() (T, error) {
	var zero T
	if v.length == 0 {
		return zero, fmt.Errorf("%w: Last", ErrEmptyVector)
	}
	x, _ := v.At(v.length - 1)
	return x, nil
}

// Tail returns the vector with its first element removed.
func (v Vector[T]) Tail() (Vector[T], error) {
	if v.length == 0 {
		return Vector[T]{}, fmt.Errorf("%w: Tail", ErrEmptyVector)
	}
	return v.Drop(1), nil
}

// Init returns the vector with its final element removed.
func (v Vector[T]) Init() (Vector[T], error) {
	if v.length == 0 {
		return Vector[T]{}, fmt.Errorf("%w: Init", ErrEmptyVector)
	}
	return v.DropRight(1), nil
}
