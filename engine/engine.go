package engine

import "mcts/experiments/metrics"

type Engine interface {
	// Run plays a game till it is over or a max number of moves is reached
	Run() (winner int, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
