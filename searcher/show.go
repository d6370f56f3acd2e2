package searcher

import (
	"fmt"
	"io"
	"strings"
)

// The Show functions only read the tree. maxDepth counts the printed levels,
// the root being the first one.

// ShowTree prints every node down to maxDepth. It can be very large.
func (m *MCTS) ShowTree(w io.Writer, maxDepth int) error {
	t := m.tree
	type entry struct {
		id    NodeID
		depth int
	}
	stack := []entry{{id: t.Root()}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.Node(e.id)
		if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("|    ", e.depth), n); err != nil {
			return err
		}
		if e.depth+1 >= maxDepth {
			continue
		}
		// Reverse push keeps the children in expansion order
		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, entry{id: n.children[i], depth: e.depth + 1})
		}
	}
	return nil
}

// ShowBestPath prints the path of best children; siblings along it are
// printed without their subtrees.
func (m *MCTS) ShowBestPath(w io.Writer, maxDepth int) error {
	t := m.tree
	id := t.Root()
	for depth := 0; ; depth++ {
		indent := strings.Repeat("|\t", depth)
		if _, err := fmt.Fprintf(w, "%s%s\n", indent, t.Node(id)); err != nil {
			return err
		}
		if depth+1 >= maxDepth {
			return nil
		}

		best, ok := t.decide(id)
		if !ok {
			return nil
		}
		for _, c := range t.Node(id).children {
			if c == best {
				continue
			}
			if _, err := fmt.Fprintf(w, "%s|\t%s\n", indent, t.Node(c)); err != nil {
				return err
			}
		}
		id = best
	}
}

// ShowBestMoveSequence prints the game states along the path of best children.
func (m *MCTS) ShowBestMoveSequence(w io.Writer, maxDepth int) error {
	t := m.tree
	id := t.Root()
	for depth := 0; ; depth++ {
		if _, err := fmt.Fprintln(w, t.Node(id).state); err != nil {
			return err
		}
		if depth+1 >= maxDepth {
			return nil
		}
		best, ok := t.decide(id)
		if !ok {
			return nil
		}
		id = best
	}
}
