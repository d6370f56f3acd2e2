package connectfour

import (
	"testing"

	"mcts/game"

	"github.com/stretchr/testify/require"
)

// playColumns drops tokens into the given columns in turn, checking that the
// game stays open until the last one.
func playColumns(t *testing.T, columns ...int) *State {
	t.Helper()
	s := New()
	for i, col := range columns {
		require.False(t, s.IsGameOver(), "Game should not be over before move %d", i)
		next, err := s.PlayColumn(col)
		require.NoError(t, err)
		s = next
	}
	return s
}

func TestNew(t *testing.T) {
	s := New()

	require.Equal(t, Columns, s.MoveCount())
	require.False(t, s.IsGameOver())
	require.Equal(t, First, s.ToMove())
}

func TestPlay(t *testing.T) {
	t.Run("stacking tokens", func(t *testing.T) {
		s := playColumns(t, 3, 3)

		grid := s.Grid()
		require.Equal(t, First, grid[3][0])
		require.Equal(t, Second, grid[3][1])
		require.Equal(t, None, grid[3][2])
	})

	t.Run("full columns leave the move list", func(t *testing.T) {
		s := playColumns(t, 0, 0, 0, 0, 0, 0)

		require.Equal(t, Columns-1, s.MoveCount())
		col, err := s.Column(0)
		require.NoError(t, err)
		require.Equal(t, 1, col)
		_, err = s.MoveIndex(0)
		require.ErrorIs(t, err, game.ErrInvalidMove)
	})

	t.Run("rejecting out of range indices", func(t *testing.T) {
		_, err := New().Play(Columns)
		require.ErrorIs(t, err, game.ErrInvalidMove)
		_, err = New().Play(-1)
		require.ErrorIs(t, err, game.ErrInvalidMove)
	})
}

func TestWinner(t *testing.T) {
	tests := []struct {
		name    string
		columns []int
		winner  Token
	}{
		{
			name:    "row",
			columns: []int{0, 0, 1, 1, 2, 2, 3},
			winner:  First,
		},
		{
			name:    "column",
			columns: []int{6, 5, 6, 5, 6, 5, 0, 5},
			winner:  Second,
		},
		{
			name:    "diagonal",
			columns: []int{0, 1, 1, 2, 2, 3, 2, 3, 3, 6, 3},
			winner:  First,
		},
		{
			name:    "anti-diagonal",
			columns: []int{6, 5, 5, 4, 4, 3, 4, 3, 3, 0, 3},
			winner:  First,
		},
		{
			name:    "row completed in the middle",
			columns: []int{0, 6, 1, 6, 3, 5, 2},
			winner:  First,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := playColumns(t, tc.columns...)

			require.True(t, s.IsGameOver(), "Completing move should end the game")
			require.Equal(t, tc.winner, s.Winner())
			require.Equal(t, game.Win, s.Score(), "Last mover should score a win")
			require.Equal(t, 0, s.MoveCount())
		})
	}
}

func TestThreeInARowIsNotTerminal(t *testing.T) {
	s := playColumns(t, 0, 0, 1, 1, 2, 2)

	require.False(t, s.IsGameOver())
	require.Equal(t, None, s.Winner())
}
