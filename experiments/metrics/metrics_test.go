package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counting a search", func(t *testing.T) {
		c := NewCollector()
		c.Start()
		c.SetTreeReused(true)
		for i := 0; i < 3; i++ {
			c.AddIteration()
			c.AddExpansion()
			c.AddPlayout(4)
		}
		c.SetRootClosed()

		m := c.Complete()

		require.Equal(t, 3, m.Iterations)
		require.Equal(t, 3, m.Expansions)
		require.Equal(t, 12, m.PlayoutPlies)
		require.True(t, m.RootClosed)
		require.True(t, m.IsTreeReused)
		require.GreaterOrEqual(t, m.Duration, time.Duration(0))
	})

	t.Run("starting over", func(t *testing.T) {
		c := NewCollector()
		c.Start()
		c.AddIteration()
		c.SetRootClosed()
		c.Complete()

		c.Start()
		m := c.Complete()

		require.Zero(t, m.Iterations)
		require.False(t, m.RootClosed)
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start()
		c.AddIteration()
		c.SetRootClosed()

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "strength")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "strength"), filepath.Dir(w.BaseDir()))

	t.Run("agent configs", func(t *testing.T) {
		err := w.WriteAgentConfigs([]AgentConfig{
			{ID: 1, Kind: "search", Iterations: 500, Exploration: 1.5, Seed: 7},
			{ID: 2, Kind: "random", Seed: 8},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.BaseDir(), "agent_configs.csv"))
		require.Len(t, rows, 3)
		require.Equal(t, []string{"id", "kind", "iterations", "duration", "exploration", "seed"}, rows[0])
		require.Equal(t, []string{"1", "search", "500", "0s", "1.5", "7"}, rows[1])
		require.Equal(t, []string{"2", "random", "0", "0s", "0", "8"}, rows[2])
	})

	t.Run("game records", func(t *testing.T) {
		start := time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)
		err := w.WriteGameRecords([]GameRecord{{
			ID: 1, Agent1: 1, Agent2: 2,
			GameMetric: GameMetric{
				StartingPlayer: 1,
				Winner:         NoWinner,
				StartTime:      start,
				EndTime:        start.Add(2 * time.Second),
				Duration:       2 * time.Second,
				TotalMoves:     9,
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.BaseDir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "1", "2", "1", "-1", "2024-10-01T12:00:00Z", "2024-10-01T12:00:02Z", "2s", "9"}, rows[1])
	})

	t.Run("move records", func(t *testing.T) {
		err := w.WriteMoveRecords([]MoveRecord{{
			Game: 1,
			MoveMetric: MoveMetric{
				Step:   3,
				Player: 0,
				SearchMetric: SearchMetric{
					Iterations:   100,
					Expansions:   100,
					PlayoutPlies: 420,
					Duration:     time.Millisecond,
					IsTreeReused: true,
				},
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.BaseDir(), "move_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "3", "0", "1ms", "100", "100", "420", "false", "true"}, rows[1])
	})
}

func TestSummarize(t *testing.T) {
	games := []GameRecord{
		{ID: 1, Agent1: 1, Agent2: 2, GameMetric: GameMetric{Winner: 0}},
		{ID: 2, Agent1: 1, Agent2: 2, GameMetric: GameMetric{StartingPlayer: 1, Winner: NoWinner}},
		{ID: 3, Agent1: 2, Agent2: 1, GameMetric: GameMetric{Winner: 1}},
	}
	moves := []MoveRecord{
		{Game: 1, MoveMetric: MoveMetric{Player: 0, SearchMetric: SearchMetric{Iterations: 100, Duration: 2 * time.Millisecond}}},
		{Game: 1, MoveMetric: MoveMetric{Player: 0, SearchMetric: SearchMetric{Iterations: 300, Duration: 4 * time.Millisecond}}},
		{Game: 3, MoveMetric: MoveMetric{Player: 0, SearchMetric: SearchMetric{Iterations: 10}}},
		{Game: 9, MoveMetric: MoveMetric{Player: 0, SearchMetric: SearchMetric{Iterations: 999}}},
	}

	summaries := Summarize(games, moves)

	require.Len(t, summaries, 2)
	first, second := summaries[0], summaries[1]

	require.Equal(t, 1, first.Agent)
	require.Equal(t, 3, first.Games)
	require.Equal(t, 2, first.Wins)
	require.Equal(t, 1, first.Draws)
	require.Equal(t, 0, first.Losses)
	require.InDelta(t, 5.0/6, first.WinRate(), 1e-9)
	require.Equal(t, 2, first.Moves)
	require.InDelta(t, 200, first.MeanIterations, 1e-9)
	require.InDelta(t, 141.42135623730951, first.StdIterations, 1e-9)
	require.InDelta(t, 3, first.MeanMillis, 1e-9)

	require.Equal(t, 2, second.Agent)
	require.Equal(t, 2, second.Losses)
	require.Equal(t, 1, second.Moves)
	require.InDelta(t, 10, second.MeanIterations, 1e-9)
	require.Zero(t, second.StdIterations, "A single sample has no spread")
}
