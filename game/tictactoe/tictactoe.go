package tictactoe

import (
	"fmt"
	"strings"

	"mcts/game"
)

type Mark int8

const (
	Empty Mark = 0
	X     Mark = 1
	O     Mark = -1
)

func (m Mark) Opponent() Mark {
	return -m
}

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	}
	return " "
}

const Size = 3

// Board cells in row-major order.
type Board [Size * Size]Mark

var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
	{0, 4, 8}, {2, 4, 6}, // diagonals
}

// State is a three-in-a-row position. The zero value is not usable, see New.
type State struct {
	board  Board
	toMove Mark
	winner Mark
	moves  []int // cells of the legal moves, indexed by move index
}

// New returns the empty board with X to move.
func New() *State {
	return FromBoard(Board{}, X)
}

// FromBoard builds a position from an arbitrary board and the mark to move.
func FromBoard(board Board, toMove Mark) *State {
	if toMove != X && toMove != O {
		panic(fmt.Sprintf("invalid mark to move: %d", toMove))
	}
	s := &State{board: board, toMove: toMove}
	s.winner = board.winner()
	s.fillMoves()
	return s
}

func (b Board) winner() Mark {
	for _, line := range lines {
		sum := int(b[line[0]]) + int(b[line[1]]) + int(b[line[2]])
		if sum == 3 {
			return X
		}
		if sum == -3 {
			return O
		}
	}
	return Empty
}

func (b Board) isFull() bool {
	for _, mark := range b {
		if mark == Empty {
			return false
		}
	}
	return true
}

func (s *State) fillMoves() {
	s.moves = s.moves[:0]
	if s.winner != Empty {
		return
	}
	for cell, mark := range s.board {
		if mark == Empty {
			s.moves = append(s.moves, cell)
		}
	}
}

func (s *State) Board() Board {
	return s.board
}

func (s *State) ToMove() Mark {
	return s.toMove
}

// Winner returns Empty while nobody has completed a line.
func (s *State) Winner() Mark {
	return s.winner
}

// Cell returns the board cell played by the move at index.
func (s *State) Cell(index int) (int, error) {
	if index < 0 || index >= len(s.moves) {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", game.ErrInvalidMove, index, len(s.moves))
	}
	return s.moves[index], nil
}

// MoveIndex returns the move index that plays the given cell.
func (s *State) MoveIndex(cell int) (int, error) {
	for i, c := range s.moves {
		if c == cell {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: cell %d is not playable", game.ErrInvalidMove, cell)
}

func (s *State) Score() float64 {
	switch s.winner {
	case Empty:
		return game.Draw
	case s.toMove.Opponent(): // the last mover completed a line
		return game.Win
	}
	return game.Loss
}

func (s *State) IsGameOver() bool {
	return s.winner != Empty || s.board.isFull()
}

func (s *State) MoveCount() int {
	return len(s.moves)
}

func (s *State) Play(index int) (game.State, error) {
	cell, err := s.Cell(index)
	if err != nil {
		return nil, err
	}
	next := &State{board: s.board, toMove: s.toMove.Opponent()}
	next.board[cell] = s.toMove
	next.winner = next.board.winner()
	next.moves = make([]int, 0, len(s.moves)-1)
	next.fillMoves()
	return next, nil
}

func (s *State) String() string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			fmt.Fprintf(&sb, " %s |", s.board[row*Size+col])
		}
		sb.WriteString("\n")
	}
	sb.WriteString("------------")
	return sb.String()
}
