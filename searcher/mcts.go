package searcher

import (
	"fmt"
	"time"

	"mcts/experiments/metrics"
	"mcts/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(m *MCTS)

type MCTS struct {
	exploration float64
	rng         *rand.Rand
	tree        *Tree
	reused      bool
	metrics     metrics.Collector
	last        metrics.SearchMetric
}

func WithExplorationConstant(c float64) Option {
	return func(m *MCTS) {
		if c >= 0 {
			m.exploration = c
		}
	}
}

// WithRand sets the random source used for expansion and rollouts.
func WithRand(rng *rand.Rand) Option {
	return func(m *MCTS) {
		if rng != nil {
			m.rng = rng
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func New(state game.State, options ...Option) *MCTS {
	m := &MCTS{ // Default values
		exploration: ExplorationConstant,
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	m.tree = newTree(state, m.rng, m.exploration)
	return m
}

func (m *MCTS) Tree() *Tree {
	return m.tree
}

// Metrics returns the metrics of the last search, zero unless WithMetrics was given.
func (m *MCTS) Metrics() metrics.SearchMetric {
	return m.last
}

// SearchBestMove runs up to iterations rounds of selection, expansion, rollout
// and backpropagation, then returns the move index of the root's best child.
// The tree is kept, so calling it again refines the same search.
func (m *MCTS) SearchBestMove(iterations int) (int, error) {
	return m.search(func(i int) bool { return i < iterations })
}

// SearchBestMoveFor is SearchBestMove bounded by wall time.
func (m *MCTS) SearchBestMoveFor(duration time.Duration) (int, error) {
	deadline := time.Now().Add(duration)
	return m.search(func(int) bool { return time.Now().Before(deadline) })
}

func (m *MCTS) search(proceed func(iteration int) bool) (int, error) {
	t := m.tree
	root := t.Node(t.Root())

	m.metrics.Start()
	m.metrics.SetTreeReused(m.reused)
	defer func() { m.last = m.metrics.Complete() }()

	for i := 0; proceed(i) && !root.closed; i++ {
		leaf, ok, err := m.descend()
		if err != nil {
			return 0, err
		}
		if !ok {
			log.Debug().Int("iteration", i).Msg("no leaf left to roll out")
			break
		}

		score, plies, err := t.Rollout(leaf)
		if err != nil {
			return 0, err
		}
		t.Backpropagate(leaf, leafReward(score, plies))

		m.metrics.AddIteration()
		m.metrics.AddPlayout(plies)
	}
	if root.closed {
		m.metrics.SetRootClosed()
	}

	best, ok := t.decide(t.Root())
	if !ok {
		return 0, ErrEmptyDecision
	}
	child := t.Node(best)
	log.Debug().
		Int("move", child.moveIndex).
		Int("visits", child.visits).
		Float64("ucb1", ucb1(child.rewards, child.visits)).
		Bool("solved", child.solved).
		Msg("picked best move")
	return child.moveIndex, nil
}

// descend walks down from the root by UCT until it reaches a node that can
// still be expanded, and returns the new child. It returns false when the
// walk ends on a terminal node or a node without open children.
func (m *MCTS) descend() (NodeID, bool, error) {
	t := m.tree
	id := t.Root()
	for !t.Node(id).IsTerminal() {
		if !t.Node(id).IsFullyExpanded() {
			child, ok, err := t.Expand(id)
			if err != nil {
				return NoNode, false, err
			}
			if ok {
				m.metrics.AddExpansion()
				return child, true, nil
			}
		}

		next, ok := t.BestChildUCT(id)
		if !ok {
			return NoNode, false, nil
		}
		id = next
	}
	return NoNode, false, nil
}

// Advance moves the root to the state after move. The explored subtree under
// that move is reused when there is one.
func (m *MCTS) Advance(move int) error {
	t := m.tree
	root := t.Node(t.Root())
	for _, c := range root.children {
		if t.nodes[c].moveIndex == move {
			m.tree = t.subtree(c)
			m.reused = true
			return nil
		}
	}

	next, err := root.state.Play(move)
	if err != nil {
		return fmt.Errorf("failed to advance the tree: %w", err)
	}
	m.tree = newTree(next, m.rng, m.exploration)
	m.reused = false
	return nil
}
