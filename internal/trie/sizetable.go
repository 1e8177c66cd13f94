package trie

import "sort"

// BuildSizes returns a relaxed size table for children (each at depth
// childDepth), or nil if the children are already balanced: every
// child but the last is a complete 32^childDepth subtree, and the last
// child itself has no relaxed descendant anywhere on its own rightmost
// spine.
func BuildSizes[T any](children []*Node[T], childDepth int) []int {
	full := Pow32(childDepth)
	balanced := true
	sizes := make([]int, len(children))
	sum := 0
	for i, c := range children {
		sz := c.Size(childDepth)
		sum += sz
		sizes[i] = sum
		if i < len(children)-1 && sz != full {
			balanced = false
		}
	}
	if balanced && !hasRelaxedDescendant(children[len(children)-1], childDepth) {
		return nil
	}
	return sizes
}

// hasRelaxedDescendant reports whether n, or any node on its rightmost
// spine, carries a size table.
func hasRelaxedDescendant[T any](n *Node[T], depth int) bool {
	if depth == 1 {
		return false
	}
	if n.Sizes != nil {
		return true
	}
	if len(n.Children) == 0 {
		return false
	}
	return hasRelaxedDescendant(n.Children[len(n.Children)-1], depth-1)
}

// SlotFor searches a cumulative size table for the smallest index whose
// prefix sum exceeds offset, returning that index along with the
// offset remaining once the preceding prefix sum is subtracted.
func SlotFor(sizes []int, offset int) (slot int, remaining int) {
	slot = sort.Search(len(sizes), func(i int) bool { return sizes[i] > offset })
	if slot == 0 {
		return 0, offset
	}
	return slot, offset - sizes[slot-1]
}

// locateChild finds the child of n (at depth d) covering the
// zero-based position pos within n's own range, returning the child's
// index and its start offset relative to n.
func locateChild[T any](n *Node[T], d int, pos int) (idx int, start int) {
	if n.Sizes != nil {
		idx, _ = SlotFor(n.Sizes, pos)
		if idx > 0 {
			start = n.Sizes[idx-1]
		}
		return idx, start
	}
	full := Pow32(d - 1)
	idx = pos / full
	if idx >= len(n.Children) {
		idx = len(n.Children) - 1
	}
	start = idx * full
	return idx, start
}
