package rrbvec

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/npillmayer/rrbvec/internal/trie"
)

// nodeids allocates small, stable integer IDs for nodes during a dump,
// so that repeated (shared) nodes get a single DOT vertex.
type nodeids[T any] struct {
	idTable map[*trie.Node[T]]int
	max     int
}

func newnodeids[T any]() nodeids[T] {
	return nodeids[T]{idTable: make(map[*trie.Node[T]]int), max: 1}
}

func (ids *nodeids[T]) alloc(n *trie.Node[T]) (id int, fresh bool) {
	if id, ok := ids.idTable[n]; ok {
		return id, false
	}
	id = ids.max
	ids.idTable[n] = id
	ids.max++
	return id, true
}

// Dump writes the Graphviz DOT representation of v's trie to w, for
// debugging: balanced nodes are drawn as plain circles, relaxed nodes
// (carrying a size table) as filled ones, and leaves as boxes.
func (v Vector[T]) Dump(w io.Writer) error {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	if v.root == nil {
		io.WriteString(w, "\t\"empty\" [label=\"\\u2205\",shape=circle];\n")
		io.WriteString(w, "}\n")
		return nil
	}
	ids := newnodeids[T]()
	var walk func(n *trie.Node[T], depth int) error
	walk = func(n *trie.Node[T], depth int) error {
		id, fresh := ids.alloc(n)
		if !fresh {
			return nil
		}
		if n.IsLeaf() {
			fmt.Fprintf(w, "\t\"%d\" [label=\"%d elems\"%s];\n", id, len(n.Leaf), leafStyle())
			return nil
		}
		style := balancedStyle()
		if n.Relaxed() {
			style = relaxedStyle()
		}
		fmt.Fprintf(w, "\t\"%d\" [label=\"%d\"%s];\n", id, n.Size(depth), style)
		for _, c := range n.Children {
			if err := walk(c, depth-1); err != nil {
				return err
			}
			cid, _ := ids.alloc(c)
			fmt.Fprintf(w, "\t\"%d\" -> \"%d\";\n", id, cid)
		}
		return nil
	}
	if err := walk(v.root, v.depth); err != nil {
		return err
	}
	io.WriteString(w, "}\n")
	return nil
}

func leafStyle() string {
	return ",style=filled,shape=box,fillcolor=\"#a3d7e4\""
}

func balancedStyle() string {
	return ",style=filled,shape=circle,color=black,fillcolor=\"#ffffff\""
}

func relaxedStyle() string {
	return ",style=filled,shape=circle,color=black,fillcolor=\"#f4b183\""
}

// DumpLeaves writes a human-readable ruler of v's elements to w: every
// element in order, with a cyan "|" (printed through fatih/color, which
// decides by itself whether to emit color codes) before each element
// whose index is a multiple of trie.Width. The markers follow index
// positions, not the trie's actual leaf boundaries, and relaxed and
// balanced blocks are not told apart. Lines are wrapped to the terminal
// width, falling back to 80 columns when the width cannot be
// determined (w is not a terminal, or the query fails).
func (v Vector[T]) DumpLeaves(w io.Writer) {
	width := 80
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			width = cols
		}
	}
	label := color.New(color.FgCyan)
	if v.root == nil {
		label.Fprintln(w, "(empty)")
		return
	}
	it := v.Iterator()
	col := 0
	idx := 0
	for it.HasNext() {
		x, _ := it.Next()
		s := fmt.Sprintf("%v ", x)
		if col+len(s) > width {
			io.WriteString(w, "\n")
			col = 0
		}
		if idx%trie.Width == 0 {
			label.Fprint(w, "|")
			col++
		}
		io.WriteString(w, s)
		col += len(s)
		idx++
	}
	io.WriteString(w, "\n")
}
