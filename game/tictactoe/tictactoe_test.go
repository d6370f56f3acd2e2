package tictactoe

import (
	"testing"

	"mcts/game"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	s := New()

	require.Equal(t, 9, s.MoveCount(), "Empty board should have 9 moves")
	require.False(t, s.IsGameOver())
	require.Equal(t, X, s.ToMove(), "X should move first")
}

func TestPlay(t *testing.T) {
	t.Run("playing the centre", func(t *testing.T) {
		s := New()

		next, err := s.Play(4)

		require.NoError(t, err)
		require.Equal(t, 8, next.MoveCount(), "Centre move should leave 8 moves")
		require.Equal(t, X, next.(*State).Board()[4], "Centre should hold X")
		require.Equal(t, O, next.(*State).ToMove(), "O should move next")
		require.Equal(t, Board{}, s.Board(), "Receiver should not change")
	})

	t.Run("rejecting out of range indices", func(t *testing.T) {
		s := New()

		for _, index := range []int{-1, 9, 100} {
			_, err := s.Play(index)
			require.ErrorIs(t, err, game.ErrInvalidMove)
		}
	})

	t.Run("move indices follow empty cells", func(t *testing.T) {
		s := FromBoard(Board{X, O, Empty, Empty, X, Empty, O, Empty, Empty}, X)

		require.Equal(t, 5, s.MoveCount())
		cell, err := s.Cell(0)
		require.NoError(t, err)
		require.Equal(t, 2, cell)
		index, err := s.MoveIndex(8)
		require.NoError(t, err)
		require.Equal(t, 4, index)
	})
}

func TestGameOver(t *testing.T) {
	tests := []struct {
		name   string
		board  Board
		toMove Mark
		over   bool
		winner Mark
		score  float64
	}{
		{
			name:   "row win by X",
			board:  Board{X, X, X, O, O, Empty, Empty, Empty, Empty},
			toMove: O,
			over:   true,
			winner: X,
			score:  game.Win,
		},
		{
			name:   "diagonal win by O",
			board:  Board{O, X, X, Empty, O, X, Empty, Empty, O},
			toMove: X,
			over:   true,
			winner: O,
			score:  game.Win,
		},
		{
			name:   "draw on a full board",
			board:  Board{X, O, X, X, O, O, O, X, X},
			toMove: O,
			over:   true,
			winner: Empty,
			score:  game.Draw,
		},
		{
			name:   "open position",
			board:  Board{X, O, Empty, Empty, Empty, Empty, Empty, Empty, Empty},
			toMove: X,
			over:   false,
			winner: Empty,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := FromBoard(tc.board, tc.toMove)

			require.Equal(t, tc.over, s.IsGameOver())
			require.Equal(t, tc.winner, s.Winner())
			if tc.over {
				require.Equal(t, 0, s.MoveCount(), "Finished game should have no moves")
				require.Equal(t, tc.score, s.Score())
			}
		})
	}
}

func TestPlayCompletingLine(t *testing.T) {
	s := FromBoard(Board{X, X, Empty, O, O, Empty, Empty, Empty, Empty}, X)
	index, err := s.MoveIndex(2)
	require.NoError(t, err)

	next, err := s.Play(index)

	require.NoError(t, err)
	require.True(t, next.IsGameOver())
	require.Equal(t, game.Win, next.Score(), "Last mover should score a win")
	require.Equal(t, 0, next.MoveCount())
}
