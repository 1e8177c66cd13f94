package trie

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

func trace() tracing.Trace {
	return gtrace.CoreTracer
}

// Pointer caches a root-to-leaf path ("displays") together with the
// absolute index range ("focus window") that the cached leaf (Display0)
// covers. Repeated access within the cached leaf needs no descent;
// access outside that window triggers a full descent from the root.
//
// A Pointer is never safe for concurrent use — it belongs to exactly
// one Vector value (shared, by design, with copies of that same
// logical vector; see the doc of rrbvec.Vector).
type Pointer[T any] struct {
	Display0 []T
	display1 *Node[T]
	display2 *Node[T]
	display3 *Node[T]
	display4 *Node[T]
	display5 *Node[T]

	Depth int

	FocusStart int
	FocusEnd   int
	lastAccess int

	Path       [MaxDepth]int
	levelStart [MaxDepth]int
	levelEnd   [MaxDepth]int
}

func (p *Pointer[T]) displayNode(level int) *Node[T] {
	switch level {
	case 1:
		return p.display1
	case 2:
		return p.display2
	case 3:
		return p.display3
	case 4:
		return p.display4
	case 5:
		return p.display5
	}
	panic(ErrInvariant)
}

func (p *Pointer[T]) setDisplayNode(level int, n *Node[T]) {
	switch level {
	case 1:
		p.display1 = n
	case 2:
		p.display2 = n
	case 3:
		p.display3 = n
	case 4:
		p.display4 = n
	case 5:
		p.display5 = n
	default:
		panic(ErrInvariant)
	}
}

// FocusOn repositions p so that Display0 covers index, descending from
// root (at the given depth). The cached window is the range of the
// single leaf in Display0: an index inside it is served without any
// descent, and any other index triggers a full descent from root. The
// cached upper levels of the path are not reused; the partial
// re-descent branch below needs two window offsets that differ above
// the leaf level, which a window of at most Width elements never has.
func (p *Pointer[T]) FocusOn(root *Node[T], depth int, index int) {
	if depth == 0 {
		p.Depth = 0
		p.Display0 = nil
		p.FocusStart, p.FocusEnd = 0, 0
		p.lastAccess = 0
		return
	}
	if p.Depth == depth && p.Display0 != nil && index >= p.FocusStart && index < p.FocusEnd {
		xor := (index - p.FocusStart) ^ (p.lastAccess - p.FocusStart)
		if xor < Width {
			p.lastAccess = index
			return
		}
		if L := levelForXor(xor, depth-1); L <= depth-1 {
			p.descendFrom(p.displayNode(L), p.levelStart[L], p.levelEnd[L], L, index)
			p.lastAccess = index
			return
		}
	}
	p.fullReset(root, depth, index)
	p.lastAccess = index
}

// levelForXor returns the shallowest level L in [1, maxLevel] whose
// subtree range (32^L elements) is still guaranteed to hold both the
// old and the new index, i.e. the smallest L with xor < 32^L. It
// returns maxLevel+1 if no such level exists, signalling that a full
// reset is required.
func levelForXor(xor int, maxLevel int) int {
	for L := 1; L <= maxLevel; L++ {
		if xor < Pow32(L) {
			return L
		}
	}
	return maxLevel + 1
}

func (p *Pointer[T]) fullReset(root *Node[T], depth int, index int) {
	trace().Debugf("trie: full reset, depth=%d index=%d", depth, index)
	p.Depth = depth
	if depth == 1 {
		p.Display0 = root.Leaf
		p.FocusStart, p.FocusEnd = 0, len(root.Leaf)
		return
	}
	p.descendFrom(root, 0, root.Size(depth), depth-1, index)
}

// descendFrom re-descends levels fromLevel..1, given that n (at depth
// fromLevel+1) covers [start, end). It fills in Display0..Display_fromLevel
// and the per-level bookkeeping along the way.
func (p *Pointer[T]) descendFrom(n *Node[T], start, end int, fromLevel int, index int) {
	for level := fromLevel; level >= 1; level-- {
		p.setDisplayNode(level, n)
		p.levelStart[level] = start
		p.levelEnd[level] = end
		idx, childStart := locateChild(n, level+1, index-start)
		var childEnd int
		if n.Sizes != nil {
			childEnd = start + n.Sizes[idx]
			childStart += start
		} else {
			childStart += start
			childEnd = childStart + Pow32(level)
			if childEnd > end {
				childEnd = end
			}
		}
		p.Path[level] = idx
		n = n.Children[idx]
		start, end = childStart, childEnd
	}
	p.Display0 = n.Leaf
	p.FocusStart, p.FocusEnd = start, end
}

// Get returns the element at index, descending/refocusing as needed.
func (p *Pointer[T]) Get(root *Node[T], depth int, index int) T {
	p.FocusOn(root, depth, index)
	return p.Display0[index-p.FocusStart]
}
