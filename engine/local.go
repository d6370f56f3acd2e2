package engine

import (
	"fmt"
	"time"

	"mcts/agent"
	"mcts/experiments/metrics"
	"mcts/game"
	"mcts/meta"

	"github.com/rs/zerolog/log"
)

type Option func(e *Local)

// Local plays two agents against each other in one process.
type Local struct {
	State    game.State
	Agents   [2]agent.Agent
	first    int
	maxTurns int
}

// WithStartingPlayer sets the index of the agent moving from the initial state.
func WithStartingPlayer(index int) Option {
	return func(e *Local) {
		if index == 0 || index == 1 {
			e.first = index
		}
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *Local) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func NewLocal(state game.State, agents []agent.Agent, options ...Option) *Local {
	if state == nil {
		panic("cannot start a game without a state")
	}
	if len(agents) != 2 {
		panic("need exactly two agents")
	}
	e := &Local{
		State:    state,
		Agents:   [2]agent.Agent{agents[0], agents[1]},
		maxTurns: meta.MAX_TURNS,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop until the game is over. The winner is an agent
// index, or metrics.NoWinner on a draw or when the turn limit is hit.
func (e *Local) Run() (int, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.first,
		Winner:         metrics.NoWinner,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", e.Agents[e.first].Name())

	player := e.first
	turn := 1
	for ; !e.State.IsGameOver() && turn <= e.maxTurns; turn++ {
		current := e.Agents[player]
		move, searchMetric, err := current.FindMove(e.State)
		if err != nil {
			return metrics.NoWinner, gameMetric, moveMetrics, fmt.Errorf("%s failed to find a move: %w", current.Name(), err)
		}

		next, err := e.State.Play(move)
		if err != nil {
			return metrics.NoWinner, gameMetric, moveMetrics, fmt.Errorf("%s played an illegal move: %w", current.Name(), err)
		}
		for _, a := range e.Agents {
			if err := a.Observe(move); err != nil {
				return metrics.NoWinner, gameMetric, moveMetrics, fmt.Errorf("%s failed to observe move %d: %w", a.Name(), move, err)
			}
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       player,
			SearchMetric: searchMetric,
		})
		log.Debug().
			Int("turn", turn).
			Str("agent", current.Name()).
			Int("move", move).
			Int("iterations", searchMetric.Iterations).
			Msg("played move")

		e.State = next
		player = 1 - player
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = turn - 1

	if !e.State.IsGameOver() {
		log.Info().Msgf("stopped after %d turns without a result", e.maxTurns)
		return metrics.NoWinner, gameMetric, moveMetrics, nil
	}

	// Score is given for the agent who made the last move
	lastMover := 1 - player
	switch score := e.State.Score(); {
	case score >= game.Win:
		gameMetric.Winner = lastMover
	case score <= game.Loss:
		gameMetric.Winner = player
	}
	if gameMetric.Winner == metrics.NoWinner {
		log.Info().Msgf("game ended in a draw after %d moves", gameMetric.TotalMoves)
	} else {
		log.Info().Msgf("%s won after %d moves", e.Agents[gameMetric.Winner].Name(), gameMetric.TotalMoves)
	}
	return gameMetric.Winner, gameMetric, moveMetrics, nil
}
