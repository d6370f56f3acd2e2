package agent

import (
	"mcts/experiments/metrics"
	"mcts/game"
)

type Agent interface {
	Name() string
	// FindMove returns the move index to play and performance metrics (if collected) from the search
	FindMove(state game.State) (int, metrics.SearchMetric, error)
	// Observe is called with every move played, by either agent
	Observe(move int) error
}
