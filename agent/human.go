package agent

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"mcts/experiments/metrics"
	"mcts/game"
)

var ErrNoInput = errors.New("no more input")

type humanAgent struct {
	name string
	in   *bufio.Scanner
	out  io.Writer
}

// NewHumanAgent returns an agent reading move indices line by line from in.
func NewHumanAgent(name string, in io.Reader, out io.Writer) Agent {
	return &humanAgent{
		name: name,
		in:   bufio.NewScanner(in),
		out:  out,
	}
}

func (a *humanAgent) Name() string {
	return a.name
}

func (a *humanAgent) FindMove(state game.State) (int, metrics.SearchMetric, error) {
	count := state.MoveCount()
	fmt.Fprintf(a.out, "%s\n%s, pick a move in [0, %d): ", state, a.name, count)
	for a.in.Scan() {
		move, err := strconv.Atoi(strings.TrimSpace(a.in.Text()))
		if err == nil && move >= 0 && move < count {
			return move, metrics.SearchMetric{}, nil
		}
		fmt.Fprintf(a.out, "invalid move, pick a move in [0, %d): ", count)
	}
	if err := a.in.Err(); err != nil {
		return 0, metrics.SearchMetric{}, fmt.Errorf("failed to read move: %w", err)
	}
	return 0, metrics.SearchMetric{}, ErrNoInput
}

func (a *humanAgent) Observe(int) error {
	return nil
}
