package searcher

import "errors"

// Hyperparameters for MCTS

const ExplorationConstant = 1.5 // C in UCT

// UnvisitedScore is the UCB1 of a node without visits. It exceeds any
// attainable average reward so unvisited nodes are always picked first.
const UnvisitedScore = 100000.0

var (
	// ErrEmptyDecision is returned when the root has no child to pick.
	ErrEmptyDecision = errors.New("no move to choose from")
	// ErrNoMoves is returned when a state that is not over offers no legal move.
	ErrNoMoves = errors.New("state is not over but has no legal moves")
)
