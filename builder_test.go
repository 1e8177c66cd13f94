package rrbvec

import (
	"errors"
	"slices"
	"testing"
)

func TestBuilderAddSequential(t *testing.T) {
	setupTest(t)
	b := NewBuilder[int]()
	for i := 0; i < 200; i++ {
		if err := b.Add(i); err != nil {
			t.Fatalf("Add(%d): %v", i, err)
		}
	}
	v := b.Result()
	if v.Len() != 200 {
		t.Fatalf("Len() = %d, want 200", v.Len())
	}
	for i := 0; i < 200; i++ {
		if got := mustAt(t, v, i); got != i {
			t.Fatalf("At(%d) = %d, want %d", i, got, i)
		}
	}
}

func TestBuilderAddAllFromSliceAndSeq(t *testing.T) {
	setupTest(t)
	b := NewBuilder[int]()
	if err := b.AddSlice([]int{0, 1, 2, 3}); err != nil {
		t.Fatalf("AddSlice: %v", err)
	}
	if err := b.AddAll(FromSlice([]int{4, 5, 6}).All()); err != nil {
		t.Fatalf("AddAll: %v", err)
	}
	v := b.Result()
	want := []int{0, 1, 2, 3, 4, 5, 6}
	got := collect(v)
	if !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestBuilderAddVectorInterleaved(t *testing.T) {
	setupTest(t)
	b := NewBuilder[int]()
	b.Add(1)
	b.Add(2)
	b.AddVector(FromSlice([]int{10, 11, 12}))
	b.Add(3)
	v := b.Result()
	want := []int{1, 2, 10, 11, 12, 3}
	if got := collect(v); !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestBuilderDoneAfterResult(t *testing.T) {
	setupTest(t)
	b := NewBuilder[int]()
	b.Add(1)
	b.Result()
	if err := b.Add(2); !errors.Is(err, ErrBuilderDone) {
		t.Fatalf("Add after Result: got %v, want ErrBuilderDone", err)
	}
	b.Clear()
	if err := b.Add(2); err != nil {
		t.Fatalf("Add after Clear: %v", err)
	}
	if v := b.Result(); v.Len() != 1 {
		t.Fatalf("after Clear: Len() = %d, want 1", v.Len())
	}
}

func TestBuilderEmptyResult(t *testing.T) {
	setupTest(t)
	b := NewBuilder[string]()
	v := b.Result()
	if !v.IsEmpty() {
		t.Fatalf("empty builder did not yield an empty vector")
	}
}

func collect[T any](v Vector[T]) []T {
	out := make([]T, 0, v.Len())
	for x := range v.All() {
		out = append(out, x)
	}
	return out
}
