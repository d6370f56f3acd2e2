package searcher

import (
	"fmt"
	"slices"

	"mcts/game"

	"golang.org/x/exp/rand"
)

// Tree is an arena of nodes. Parent and children links are NodeIDs, so a
// subtree can be copied out without leaving references into the old arena.
type Tree struct {
	nodes       []*Node
	rng         *rand.Rand
	exploration float64
}

func newTree(state game.State, rng *rand.Rand, exploration float64) *Tree {
	if state == nil {
		panic("cannot build a tree without a game state")
	}
	if rng == nil {
		panic("cannot build a tree without a random source")
	}
	t := &Tree{rng: rng, exploration: exploration}
	t.add(NoNode, 0, state)
	return t
}

func (t *Tree) add(parent NodeID, move int, state game.State) NodeID {
	n := &Node{
		state:     state,
		parent:    parent,
		moveIndex: move,
	}
	if state.IsGameOver() {
		// Terminal nodes are born closed with their exact score
		n.closed = true
		n.solved = true
		n.value = state.Score()
	} else {
		count := state.MoveCount()
		n.unexplored = make([]int, count)
		for i := range n.unexplored {
			n.unexplored[i] = i
		}
		n.children = make([]NodeID, 0, count)
	}

	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, n)
	return id
}

func (t *Tree) Root() NodeID {
	return 0
}

func (t *Tree) Len() int {
	return len(t.nodes)
}

// Node panics on an id that does not belong to the tree.
func (t *Tree) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(t.nodes) {
		panic(fmt.Sprintf("node %d is not in the tree", id))
	}
	return t.nodes[id]
}

// Expand turns one random unexplored move of id into a new child. It returns
// false when every move already has a child.
func (t *Tree) Expand(id NodeID) (NodeID, bool, error) {
	n := t.Node(id)
	if len(n.unexplored) == 0 {
		return NoNode, false, nil
	}

	i := t.rng.Intn(len(n.unexplored))
	move := n.unexplored[i]
	next, err := n.state.Play(move)
	if err != nil {
		return NoNode, false, fmt.Errorf("failed to expand move %d: %w", move, err)
	}
	if next == nil {
		panic(fmt.Sprintf("move %d produced a nil game state", move))
	}

	last := len(n.unexplored) - 1
	n.unexplored[i] = n.unexplored[last]
	n.unexplored = n.unexplored[:last]

	child := t.add(id, move, next)
	n.children = append(n.children, child)
	return child, true, nil
}

// Rollout plays uniformly random moves from the state of id until the game
// ends, and returns the final Score along with the number of moves played.
// Intermediate states are discarded; the tree is left untouched.
func (t *Tree) Rollout(id NodeID) (score float64, plies int, err error) {
	state := t.Node(id).state
	for !state.IsGameOver() {
		count := state.MoveCount()
		if count <= 0 {
			return 0, plies, fmt.Errorf("rollout stalled after %d moves: %w", plies, ErrNoMoves)
		}
		state, err = state.Play(t.rng.Intn(count))
		if err != nil {
			return 0, plies, fmt.Errorf("failed to play rollout move: %w", err)
		}
		plies++
	}
	return state.Score(), plies, nil
}

// leafReward converts a terminal score reached after plies random moves into
// the frame of the player who moved into the rollout's starting node.
func leafReward(score float64, plies int) float64 {
	if plies%2 == 1 {
		return 1 - score
	}
	return score
}

// Backpropagate records one rollout from id up to the root. reward is in the
// frame of the player who moved into id; players alternate, so every level up
// receives the complement. Closing and solving are re-checked on the way.
func (t *Tree) Backpropagate(id NodeID, reward float64) {
	for id != NoNode {
		n := t.Node(id)
		n.visits++
		n.rewards += reward
		t.resolve(n)

		reward = 1 - reward
		id = n.parent
	}
}

// resolve updates the closed flag and the exact value of n from its children.
// Neither ever goes back once set.
func (t *Tree) resolve(n *Node) {
	if !n.closed && len(n.unexplored) == 0 {
		closed := true
		for _, c := range n.children {
			if !t.nodes[c].closed {
				closed = false
				break
			}
		}
		n.closed = closed
	}

	if n.solved {
		return
	}
	best, all := -1.0, len(n.unexplored) == 0
	for _, c := range n.children {
		child := t.nodes[c]
		if !child.solved {
			all = false
			continue
		}
		best = max(best, child.value)
	}
	// A single winning reply for the player to move settles the node,
	// otherwise every move has to be solved first
	if best >= game.Win || (all && best >= 0) {
		n.solved, n.value = true, 1-best
	}
}

// subtree copies the subtree rooted at id into a new tree where it becomes
// the root. Node IDs are reassigned in breadth-first order.
func (t *Tree) subtree(id NodeID) *Tree {
	sub := &Tree{rng: t.rng, exploration: t.exploration}

	type entry struct{ old, parent NodeID }
	queue := []entry{{old: id, parent: NoNode}}
	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]

		src := t.Node(e.old)
		n := *src
		n.parent = e.parent
		n.unexplored = slices.Clone(src.unexplored)
		n.children = make([]NodeID, 0, cap(src.children))
		if e.parent == NoNode {
			n.moveIndex = 0
		}

		self := NodeID(len(sub.nodes))
		for _, c := range src.children {
			// Queued entries take the IDs right after self, in order
			n.children = append(n.children, self+1+NodeID(len(queue)))
			queue = append(queue, entry{old: c, parent: self})
		}
		sub.nodes = append(sub.nodes, &n)
	}
	return sub
}
