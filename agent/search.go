package agent

import (
	"fmt"
	"io"
	"time"

	"mcts/experiments/metrics"
	"mcts/game"
	"mcts/searcher"

	"github.com/rs/zerolog/log"
)

type searchAgent struct {
	name       string
	iterations int
	duration   time.Duration
	options    []searcher.Option
	mcts       *searcher.MCTS

	trace      io.Writer
	traceDepth int
}

// NewSearchAgent returns an agent searching iterations rounds per move, or
// for duration when it is positive. The tree is kept between moves of the
// same game.
func NewSearchAgent(name string, iterations int, duration time.Duration, options ...searcher.Option) Agent {
	return &searchAgent{
		name:       name,
		iterations: iterations,
		duration:   duration,
		options:    options,
	}
}

// NewTracingSearchAgent is NewSearchAgent printing the best path down to
// depth after every search.
func NewTracingSearchAgent(name string, iterations int, duration time.Duration, w io.Writer, depth int, options ...searcher.Option) Agent {
	a := NewSearchAgent(name, iterations, duration, options...).(*searchAgent)
	a.trace = w
	a.traceDepth = depth
	return a
}

func (a *searchAgent) Name() string {
	return a.name
}

func (a *searchAgent) FindMove(state game.State) (int, metrics.SearchMetric, error) {
	if a.mcts == nil || !sameState(a.mcts.Tree().Node(a.mcts.Tree().Root()).State(), state) {
		if a.mcts != nil {
			log.Debug().Str("agent", a.name).Msg("tree out of sync with the game, starting over")
		}
		a.mcts = searcher.New(state, a.options...)
	}

	var move int
	var err error
	if a.duration > 0 {
		move, err = a.mcts.SearchBestMoveFor(a.duration)
	} else {
		move, err = a.mcts.SearchBestMove(a.iterations)
	}
	if err != nil {
		return 0, metrics.SearchMetric{}, fmt.Errorf("search failed: %w", err)
	}

	if a.trace != nil {
		if err := a.mcts.ShowBestPath(a.trace, a.traceDepth); err != nil {
			return 0, metrics.SearchMetric{}, fmt.Errorf("failed to print best path: %w", err)
		}
	}
	return move, a.mcts.Metrics(), nil
}

func (a *searchAgent) Observe(move int) error {
	if a.mcts == nil {
		return nil
	}
	return a.mcts.Advance(move)
}

// States are compared by rendering; every game here renders its full position.
func sameState(a, b game.State) bool {
	return a.String() == b.String()
}
