package rrbvec

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func setupTest(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	t.Cleanup(teardown)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
}

func mustAt[T any](t *testing.T, v Vector[T], i int) T {
	t.Helper()
	x, err := v.At(i)
	if err != nil {
		t.Fatalf("At(%d): %v", i, err)
	}
	return x
}

func TestEmptyVector(t *testing.T) {
	setupTest(t)
	v := Empty[int]()
	if !v.IsEmpty() || v.Len() != 0 {
		t.Fatalf("Empty() is not empty")
	}
	if _, err := v.At(0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("At on empty vector: got %v, want ErrIndexOutOfBounds", err)
	}
	if _, err := v.Head(); !errors.Is(err, ErrEmptyVector) {
		t.Fatalf("Head on empty vector: got %v, want ErrEmptyVector", err)
	}
}

func TestBuildByAppend0to99(t *testing.T) {
	setupTest(t)
	v := Empty[int]()
	for i := 0; i < 100; i++ {
		v = v.Append(i)
	}
	if v.Len() != 100 {
		t.Fatalf("Len() = %d, want 100", v.Len())
	}
	for i := 0; i < 100; i++ {
		if got := mustAt(t, v, i); got != i {
			t.Fatalf("At(%d) = %d, want %d", i, got, i)
		}
	}
}

func TestBuildThenUpdate0to1023(t *testing.T) {
	setupTest(t)
	v := Empty[int]()
	for i := 0; i < 1024; i++ {
		v = v.Append(i)
	}
	w, err := v.Updated(500, -500)
	if err != nil {
		t.Fatalf("Updated: %v", err)
	}
	if got := mustAt(t, w, 500); got != -500 {
		t.Fatalf("w.At(500) = %d, want -500", got)
	}
	if got := mustAt(t, v, 500); got != 500 {
		t.Fatalf("source v.At(500) = %d, want 500 (Updated must not mutate source)", got)
	}
	for i := 0; i < 1024; i++ {
		if i == 500 {
			continue
		}
		if got := mustAt(t, w, i); got != i {
			t.Fatalf("w.At(%d) = %d, want %d", i, got, i)
		}
	}
}

func TestBuildConcat0to9999With10000to19999(t *testing.T) {
	setupTest(t)
	a := Empty[int]()
	for i := 0; i < 10000; i++ {
		a = a.Append(i)
	}
	b := Empty[int]()
	for i := 10000; i < 20000; i++ {
		b = b.Append(i)
	}
	c := a.Concat(b)
	if c.Len() != 20000 {
		t.Fatalf("Len() = %d, want 20000", c.Len())
	}
	for _, i := range []int{0, 1, 9999, 10000, 10001, 19999} {
		if got := mustAt(t, c, i); got != i {
			t.Fatalf("c.At(%d) = %d, want %d", i, got, i)
		}
	}
	// sources are untouched
	if a.Len() != 10000 || b.Len() != 10000 {
		t.Fatalf("Concat mutated a source: len(a)=%d len(b)=%d", a.Len(), b.Len())
	}
}

func TestPrepend33Elements(t *testing.T) {
	setupTest(t)
	v := Empty[int]()
	for i := 32; i >= 0; i-- {
		v = v.Prepend(i)
	}
	if v.Len() != 33 {
		t.Fatalf("Len() = %d, want 33", v.Len())
	}
	for i := 0; i <= 32; i++ {
		if got := mustAt(t, v, i); got != i {
			t.Fatalf("At(%d) = %d, want %d", i, got, i)
		}
	}
}

func TestTakeDropRoundTrip(t *testing.T) {
	setupTest(t)
	const n = 5000
	v := FromSlice(rangeSlice(n))
	for _, k := range []int{0, 1, 31, 32, 33, 1000, 4999, 5000} {
		left, right := v.SplitAt(k)
		if left.Len()+right.Len() != n {
			t.Fatalf("SplitAt(%d): lengths %d+%d != %d", k, left.Len(), right.Len(), n)
		}
		for i := 0; i < left.Len(); i++ {
			if got := mustAt(t, left, i); got != i {
				t.Fatalf("left.At(%d) = %d, want %d (k=%d)", i, got, i, k)
			}
		}
		for i := 0; i < right.Len(); i++ {
			if got := mustAt(t, right, i); got != k+i {
				t.Fatalf("right.At(%d) = %d, want %d (k=%d)", i, got, k+i, k)
			}
		}
		rejoined := left.Concat(right)
		if rejoined.Len() != n {
			t.Fatalf("rejoined length = %d, want %d (k=%d)", rejoined.Len(), n, k)
		}
		for i := 0; i < n; i++ {
			if got := mustAt(t, rejoined, i); got != i {
				t.Fatalf("rejoined.At(%d) = %d, want %d (k=%d)", i, got, i, k)
			}
		}
	}
}

func TestTwoIndependentAppendsOffSharedSource(t *testing.T) {
	setupTest(t)
	src := FromSlice(rangeSlice(100))
	x := src.Append(-1)
	y := src.Append(-2)
	if src.Len() != 100 {
		t.Fatalf("source length changed: %d", src.Len())
	}
	if x.Len() != 101 || y.Len() != 101 {
		t.Fatalf("derived lengths: x=%d y=%d, want 101 each", x.Len(), y.Len())
	}
	if got := mustAt(t, x, 100); got != -1 {
		t.Fatalf("x.At(100) = %d, want -1", got)
	}
	if got := mustAt(t, y, 100); got != -2 {
		t.Fatalf("y.At(100) = %d, want -2", got)
	}
	for i := 0; i < 100; i++ {
		if got := mustAt(t, src, i); got != i {
			t.Fatalf("src.At(%d) = %d, want %d", i, got, i)
		}
		if got := mustAt(t, x, i); got != i {
			t.Fatalf("x.At(%d) = %d, want %d", i, got, i)
		}
		if got := mustAt(t, y, i); got != i {
			t.Fatalf("y.At(%d) = %d, want %d", i, got, i)
		}
	}
}

func TestHeadLastTailInit(t *testing.T) {
	setupTest(t)
	v := FromSlice(rangeSlice(10))
	if got := mustAt(t, v, 0); got != 0 {
		t.Fatalf("At(0) = %d", got)
	}
	h, _ := v.Head()
	if h != 0 {
		t.Fatalf("Head() = %d, want 0", h)
	}
	l, _ := v.Last()
	if l != 9 {
		t.Fatalf("Last() = %d, want 9", l)
	}
	tail, err := v.Tail()
	if err != nil || tail.Len() != 9 {
		t.Fatalf("Tail(): len=%d err=%v", tail.Len(), err)
	}
	if got := mustAt(t, tail, 0); got != 1 {
		t.Fatalf("Tail().At(0) = %d, want 1", got)
	}
	init, err := v.Init()
	if err != nil || init.Len() != 9 {
		t.Fatalf("Init(): len=%d err=%v", init.Len(), err)
	}
	if got := mustAt(t, init, init.Len()-1); got != 8 {
		t.Fatalf("Init().Last() = %d, want 8", got)
	}
}

func TestIndexOutOfBounds(t *testing.T) {
	setupTest(t)
	v := FromSlice(rangeSlice(5))
	if _, err := v.At(-1); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("At(-1): got %v", err)
	}
	if _, err := v.At(5); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("At(5): got %v", err)
	}
	if _, err := v.Updated(5, 0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("Updated(5): want ErrIndexOutOfBounds")
	}
}

func TestConcatWithEmpty(t *testing.T) {
	setupTest(t)
	v := FromSlice(rangeSlice(40))
	if got := v.Concat(Empty[int]()); got.Len() != 40 {
		t.Fatalf("v.Concat(empty).Len() = %d, want 40", got.Len())
	}
	if got := Empty[int]().Concat(v); got.Len() != 40 {
		t.Fatalf("empty.Concat(v).Len() = %d, want 40", got.Len())
	}
}

func rangeSlice(n int) []int {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = i
	}
	return xs
}
