package connectfour

import (
	"fmt"
	"strings"

	"mcts/game"
)

const (
	Columns = 7
	Rows    = 6
	Connect = 4
)

// Token is +1 for the first player and -1 for the second; 0 marks an empty slot.
type Token int8

const (
	None   Token = 0
	First  Token = 1
	Second Token = -1
)

func (t Token) String() string {
	switch t {
	case First:
		return "X"
	case Second:
		return "O"
	}
	return " "
}

// Grid is indexed by [column][row], row 0 being the bottom.
type Grid [Columns][Rows]Token

var directions = [4][2]int{
	{1, 0},  // row
	{0, 1},  // column
	{1, 1},  // diagonal
	{1, -1}, // anti-diagonal
}

type State struct {
	grid    Grid
	heights [Columns]int
	toMove  Token
	winner  Token
	plies   int
	columns []int // playable columns, indexed by move index
}

// New returns the empty grid with First to move.
func New() *State {
	s := &State{toMove: First}
	s.fillMoves()
	return s
}

func (s *State) fillMoves() {
	s.columns = s.columns[:0]
	if s.winner != None {
		return
	}
	for col := 0; col < Columns; col++ {
		if s.heights[col] < Rows {
			s.columns = append(s.columns, col)
		}
	}
}

func (s *State) Grid() Grid {
	return s.grid
}

func (s *State) ToMove() Token {
	return s.toMove
}

// Winner returns the signed token of the player who connected four, None otherwise.
func (s *State) Winner() Token {
	return s.winner
}

// Column returns the column the move at index drops into.
func (s *State) Column(index int) (int, error) {
	if index < 0 || index >= len(s.columns) {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", game.ErrInvalidMove, index, len(s.columns))
	}
	return s.columns[index], nil
}

// MoveIndex returns the move index dropping into column.
func (s *State) MoveIndex(column int) (int, error) {
	for i, c := range s.columns {
		if c == column {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: column %d is not playable", game.ErrInvalidMove, column)
}

// PlayColumn is Play addressed by column rather than move index.
func (s *State) PlayColumn(column int) (*State, error) {
	index, err := s.MoveIndex(column)
	if err != nil {
		return nil, err
	}
	next, err := s.Play(index)
	if err != nil {
		return nil, err
	}
	return next.(*State), nil
}

// connected counts the run of t through (col, row) along direction d.
func (g *Grid) connected(col, row int, d [2]int, t Token) int {
	count := 1
	for _, sign := range [2]int{1, -1} {
		c, r := col+sign*d[0], row+sign*d[1]
		for c >= 0 && c < Columns && r >= 0 && r < Rows && g[c][r] == t {
			count++
			c, r = c+sign*d[0], r+sign*d[1]
		}
	}
	return count
}

func (s *State) Score() float64 {
	switch s.winner {
	case None:
		return game.Draw
	case -s.toMove:
		return game.Win
	}
	return game.Loss
}

func (s *State) IsGameOver() bool {
	return s.winner != None || s.plies == Columns*Rows
}

func (s *State) MoveCount() int {
	return len(s.columns)
}

func (s *State) Play(index int) (game.State, error) {
	col, err := s.Column(index)
	if err != nil {
		return nil, err
	}
	next := &State{
		grid:    s.grid,
		heights: s.heights,
		toMove:  -s.toMove,
		plies:   s.plies + 1,
		columns: make([]int, 0, Columns),
	}
	row := next.heights[col]
	next.grid[col][row] = s.toMove
	next.heights[col]++
	for _, d := range directions {
		if next.grid.connected(col, row, d, s.toMove) >= Connect {
			next.winner = s.toMove
			break
		}
	}
	next.fillMoves()
	return next, nil
}

func (s *State) String() string {
	var sb strings.Builder
	for row := Rows - 1; row >= 0; row-- {
		for col := 0; col < Columns; col++ {
			fmt.Fprintf(&sb, " %s |", s.grid[col][row])
		}
		sb.WriteString("\n")
	}
	for col := 0; col < Columns; col++ {
		fmt.Fprintf(&sb, " %d  ", col)
	}
	return sb.String()
}
