package trie

// Updated returns a new tree, sharing everything but the path to index
// i, with i replaced by v.
func Updated[T any](n *Node[T], depth int, i int, v T) *Node[T] {
	if depth == 1 {
		leaf := make([]T, len(n.Leaf))
		copy(leaf, n.Leaf)
		leaf[i] = v
		return NewLeaf(leaf)
	}
	idx, start := locateChild(n, depth, i)
	children := make([]*Node[T], len(n.Children))
	copy(children, n.Children)
	children[idx] = Updated(children[idx], depth-1, i-start, v)
	return &Node[T]{Children: children, Sizes: n.Sizes}
}

// newPath wraps leaf in depth-1 singleton internal nodes so that the
// result is structurally at the given depth.
func newPath[T any](leaf *Node[T], depth int) *Node[T] {
	n := leaf
	for d := 1; d < depth; d++ {
		n = &Node[T]{Children: []*Node[T]{n}}
	}
	return n
}

// ReplaceLastLeaf returns a new tree with its rightmost leaf replaced
// by newLeaf. Used for the fast-path append when the current last leaf
// still has room.
func ReplaceLastLeaf[T any](root *Node[T], depth int, newLeaf *Node[T]) *Node[T] {
	if depth == 1 {
		return newLeaf
	}
	children := root.Children
	last := len(children) - 1
	newChildren := make([]*Node[T], len(children))
	copy(newChildren, children)
	newChildren[last] = ReplaceLastLeaf(children[last], depth-1, newLeaf)
	return rebuildInternal(newChildren, depth-1)
}

// ReplaceFirstLeaf is the mirror of ReplaceLastLeaf for prepend.
func ReplaceFirstLeaf[T any](root *Node[T], depth int, newLeaf *Node[T]) *Node[T] {
	if depth == 1 {
		return newLeaf
	}
	children := root.Children
	newChildren := make([]*Node[T], len(children))
	copy(newChildren, children)
	newChildren[0] = ReplaceFirstLeaf(children[0], depth-1, newLeaf)
	return rebuildInternal(newChildren, depth-1)
}

// AppendLeaf grafts newLeaf as a new rightmost leaf, growing the tree's
// depth if the current root is completely full.
func AppendLeaf[T any](root *Node[T], depth int, newLeaf *Node[T]) (*Node[T], int) {
	if depth == 0 {
		return newLeaf, 1
	}
	if depth == 1 {
		return rebuildInternal([]*Node[T]{root, newLeaf}, 1), 2
	}
	if root.Size(depth) < Pow32(depth) {
		return appendLeafRec(root, depth, newLeaf), depth
	}
	trace().Debugf("trie: append grows root from depth=%d to depth=%d", depth, depth+1)
	return rebuildInternal([]*Node[T]{root, newPath(newLeaf, depth)}, depth), depth + 1
}

func appendLeafRec[T any](n *Node[T], d int, newLeaf *Node[T]) *Node[T] {
	children := n.Children
	last := len(children) - 1
	if children[last].Size(d-1) < Pow32(d-1) {
		newChildren := make([]*Node[T], len(children))
		copy(newChildren, children)
		newChildren[last] = appendLeafRec(children[last], d-1, newLeaf)
		return rebuildInternal(newChildren, d-1)
	}
	assertInvariant(len(children) < Width, "append: root reported non-full but rightmost spine is saturated")
	newChildren := make([]*Node[T], len(children)+1)
	copy(newChildren, children)
	newChildren[len(children)] = newPath(newLeaf, d-1)
	return rebuildInternal(newChildren, d-1)
}

// PrependLeaf is the mirror of AppendLeaf for the left edge.
func PrependLeaf[T any](root *Node[T], depth int, newLeaf *Node[T]) (*Node[T], int) {
	if depth == 0 {
		return newLeaf, 1
	}
	if depth == 1 {
		return rebuildInternal([]*Node[T]{newLeaf, root}, 1), 2
	}
	if root.Size(depth) < Pow32(depth) {
		return prependLeafRec(root, depth, newLeaf), depth
	}
	trace().Debugf("trie: prepend grows root from depth=%d to depth=%d", depth, depth+1)
	return rebuildInternal([]*Node[T]{newPath(newLeaf, depth), root}, depth), depth + 1
}

func prependLeafRec[T any](n *Node[T], d int, newLeaf *Node[T]) *Node[T] {
	children := n.Children
	if children[0].Size(d-1) < Pow32(d-1) {
		newChildren := make([]*Node[T], len(children))
		copy(newChildren, children)
		newChildren[0] = prependLeafRec(children[0], d-1, newLeaf)
		return rebuildInternal(newChildren, d-1)
	}
	assertInvariant(len(children) < Width, "prepend: root reported non-full but leftmost spine is saturated")
	newChildren := make([]*Node[T], len(children)+1)
	newChildren[0] = newPath(newLeaf, d-1)
	copy(newChildren[1:], children)
	return rebuildInternal(newChildren, d-1)
}

// sliceAtDepth returns the node covering [lo, hi) of n (spanning
// [0, n.Size(d))), always structurally at depth d so that a sibling
// assembled around it stays depth-consistent. Requires lo < hi.
func sliceAtDepth[T any](n *Node[T], d int, lo, hi int) *Node[T] {
	if d == 1 {
		leaf := make([]T, hi-lo)
		copy(leaf, n.Leaf[lo:hi])
		return NewLeaf(leaf)
	}
	firstIdx, firstStart := locateChild(n, d, lo)
	lastIdx, lastStart := locateChild(n, d, hi-1)
	if firstIdx == lastIdx {
		return rebuildInternal([]*Node[T]{sliceAtDepth(n.Children[firstIdx], d-1, lo-firstStart, hi-firstStart)}, d-1)
	}
	children := make([]*Node[T], 0, lastIdx-firstIdx+1)
	first := n.Children[firstIdx]
	children = append(children, sliceAtDepth(first, d-1, lo-firstStart, first.Size(d-1)))
	for i := firstIdx + 1; i < lastIdx; i++ {
		children = append(children, n.Children[i])
	}
	children = append(children, sliceAtDepth(n.Children[lastIdx], d-1, 0, hi-lastStart))
	return rebuildInternal(children, d-1)
}

// SliceRange extracts [lo, hi) from the tree rooted at root (depth
// levels), collapsing any now-unneeded top levels (a chain of
// single-child nodes) down to the minimal depth the result needs.
func SliceRange[T any](root *Node[T], depth int, lo, hi int) (*Node[T], int) {
	if lo >= hi {
		return nil, 0
	}
	n := sliceAtDepth(root, depth, lo, hi)
	d := depth
	for d > 1 && len(n.Children) == 1 {
		n = n.Children[0]
		d--
	}
	if d < depth {
		trace().Debugf("trie: slice collapsed root from depth=%d to depth=%d", depth, d)
	}
	return n, d
}

func lastChild[T any](n *Node[T]) *Node[T] { return n.Children[len(n.Children)-1] }
func firstChild[T any](n *Node[T]) *Node[T] { return n.Children[0] }

func liftTo[T any](n *Node[T], d, target int) *Node[T] {
	for d < target {
		n = &Node[T]{Children: []*Node[T]{n}}
		d++
	}
	return n
}

func splitLeaves[T any](combined []T) []*Node[T] {
	if len(combined) <= Width {
		return []*Node[T]{NewLeaf(combined)}
	}
	return []*Node[T]{NewLeaf(combined[:Width]), NewLeaf(combined[Width:])}
}

// concatBoundary merges the touching edge of left and right (both at
// depth depth) into 1 or 2 nodes, themselves at depth depth. Only the
// rightmost spine of left and the leftmost spine of right are ever
// touched, recursively.
func concatBoundary[T any](left, right *Node[T], depth int) []*Node[T] {
	if depth == 1 {
		combined := make([]T, 0, len(left.Leaf)+len(right.Leaf))
		combined = append(combined, left.Leaf...)
		combined = append(combined, right.Leaf...)
		return splitLeaves(combined)
	}
	middle := concatBoundary(lastChild(left), firstChild(right), depth-1)
	allChildren := make([]*Node[T], 0, len(left.Children)-1+len(middle)+len(right.Children)-1)
	allChildren = append(allChildren, left.Children[:len(left.Children)-1]...)
	allChildren = append(allChildren, middle...)
	allChildren = append(allChildren, right.Children[1:]...)
	return Regroup(allChildren, depth-1)
}

func finishTop[T any](groups []*Node[T], groupDepth int) (*Node[T], int) {
	if len(groups) == 1 {
		return groups[0], groupDepth
	}
	return rebuildInternal(groups, groupDepth), groupDepth + 1
}

// ConcatTrees merges two trees (which may have different depths) into
// one, rebalancing only the boundary between them. Either operand may
// be the empty tree (depth 0).
func ConcatTrees[T any](a *Node[T], dA int, b *Node[T], dB int) (*Node[T], int) {
	if dA == 0 {
		return b, dB
	}
	if dB == 0 {
		return a, dA
	}
	D := dA
	if dB > D {
		D = dB
	}
	na := liftTo(a, dA, D)
	nb := liftTo(b, dB, D)
	trace().Debugf("trie: concat rebalancing boundary at depth=%d (operand depths %d, %d)", D, dA, dB)
	root, newDepth := finishTop(concatBoundary(na, nb, D), D)
	if newDepth != D {
		trace().Debugf("trie: concat grew root from depth=%d to depth=%d", D, newDepth)
	}
	return root, newDepth
}
