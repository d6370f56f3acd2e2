package agent

import (
	"mcts/experiments/metrics"
	"mcts/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	name string
	rng  *rand.Rand
}

// NewRandomAgent returns an agent playing uniformly random moves.
func NewRandomAgent(name string, seed uint64) Agent {
	return &randomAgent{
		name: name,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (a *randomAgent) Name() string {
	return a.name
}

func (a *randomAgent) FindMove(state game.State) (int, metrics.SearchMetric, error) {
	count := state.MoveCount()
	if count <= 0 {
		return 0, metrics.SearchMetric{}, game.ErrInvalidMove
	}
	return a.rng.Intn(count), metrics.SearchMetric{}, nil
}

func (a *randomAgent) Observe(int) error {
	return nil
}
