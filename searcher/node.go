package searcher

import (
	"fmt"
	"slices"

	"mcts/game"
)

// NodeID addresses a node inside its Tree.
type NodeID int32

// NoNode stands for a missing node: the root's parent, or no selectable child.
const NoNode NodeID = -1

// Node is a vertex of the search tree. Statistics are kept from the
// perspective of the player who made the move leading into the node.
type Node struct {
	state      game.State
	parent     NodeID
	children   []NodeID
	moveIndex  int
	unexplored []int // Legal move indices not yet turned into children
	visits     int
	rewards    float64
	closed     bool

	// Exact value of the node once the game below it is solved
	solved bool
	value  float64
}

func (n *Node) State() game.State {
	return n.state
}

func (n *Node) Parent() NodeID {
	return n.parent
}

func (n *Node) Children() []NodeID {
	return slices.Clone(n.children)
}

// MoveIndex is the parent's move that produced this node, 0 for the root.
func (n *Node) MoveIndex() int {
	return n.moveIndex
}

func (n *Node) Visits() int {
	return n.visits
}

func (n *Node) Rewards() float64 {
	return n.rewards
}

func (n *Node) Unexplored() int {
	return len(n.unexplored)
}

func (n *Node) IsClosed() bool {
	return n.closed
}

func (n *Node) IsTerminal() bool {
	return n.state.IsGameOver()
}

func (n *Node) IsFullyExpanded() bool {
	return len(n.unexplored) == 0
}

// Solved reports the exact game value once it is known.
func (n *Node) Solved() (value float64, ok bool) {
	return n.value, n.solved
}

func (n *Node) String() string {
	s := fmt.Sprintf("[ UCB %.4f V/R: %d/%.2f U %d", ucb1(n.rewards, n.visits), n.visits, n.rewards, len(n.unexplored))
	if n.closed {
		s += " | X"
	}
	return s + " ]"
}
