package experiments

import (
	"fmt"

	"mcts/agent"
	"mcts/engine"
	"mcts/experiments/metrics"
	"mcts/game"
	"mcts/searcher"

	"github.com/rs/zerolog/log"
)

const (
	KindSearch = "search"
	KindRandom = "random"
)

// Experiment plays every matchup Games times, alternating the starting agent,
// and stores the records under OutDir.
type Experiment struct {
	Name     string
	NewGame  func() game.State
	Configs  []metrics.AgentConfig
	MatchUps [][2]metrics.AgentConfig
	Games    int
	OutDir   string
}

// IterationsToStrength pairs a fixed-budget baseline against agents with
// smaller and larger budgets, and against random play.
func IterationsToStrength(newGame func() game.State, baseline, games int, outDir string) Experiment {
	base := metrics.AgentConfig{ID: 0, Kind: KindSearch, Iterations: baseline, Exploration: searcher.ExplorationConstant, Seed: 1}
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: KindRandom, Seed: 2},
		{ID: 2, Kind: KindSearch, Iterations: max(baseline/10, 1), Exploration: searcher.ExplorationConstant, Seed: 3},
		{ID: 3, Kind: KindSearch, Iterations: baseline, Exploration: searcher.ExplorationConstant, Seed: 4},
		{ID: 4, Kind: KindSearch, Iterations: baseline * 10, Exploration: searcher.ExplorationConstant, Seed: 5},
	}

	// Each matchup pairs the baseline agent against another config
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{base, config})
	}

	return Experiment{
		Name:     "iterations_to_strength",
		NewGame:  newGame,
		Configs:  append(configs, base),
		MatchUps: matchUps,
		Games:    games,
		OutDir:   outDir,
	}
}

// Run returns one summary per agent config; records are written even when
// no game was played.
func (x Experiment) Run() ([]metrics.AgentSummary, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", x.Name)

	for mi, matchup := range x.MatchUps {
		config1, config2 := matchup[0], matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(x.MatchUps), config1, config2)

		for i := 0; i < x.Games; i++ {
			count++
			winner, gameMetric, moveMetrics, err := x.runGame(config1, config2, count, i%2)
			if err != nil {
				return nil, fmt.Errorf("matchup %d game %d failed: %w", mi+1, i+1, err)
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %d", mi+1, len(x.MatchUps), i+1, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(x.MatchUps))
	}

	log.Info().Msgf("completed %s experiment", x.Name)

	if err := x.store(gameRecords, moveRecords); err != nil {
		return nil, err
	}

	summaries := metrics.Summarize(gameRecords, moveRecords)
	for _, s := range summaries {
		log.Info().
			Int("agent", s.Agent).
			Int("games", s.Games).
			Int("wins", s.Wins).
			Int("draws", s.Draws).
			Int("losses", s.Losses).
			Float64("win_rate", s.WinRate()).
			Float64("mean_iterations", s.MeanIterations).
			Float64("std_iterations", s.StdIterations).
			Float64("mean_ms", s.MeanMillis).
			Float64("std_ms", s.StdMillis).
			Msg("agent summary")
	}
	return summaries, nil
}

func (x Experiment) store(gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(x.OutDir, x.Name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(x.Configs)
	if err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Str("dir", writer.BaseDir()).Msg("stored move records")
	return nil
}

// runGame executes a single game between two agents and returns the winner
func (x Experiment) runGame(config1, config2 metrics.AgentConfig, id, starting int) (int, metrics.GameMetric, []metrics.MoveMetric, error) {
	agents := []agent.Agent{
		NewAgent("agent1", config1, uint64(id)),
		NewAgent("agent2", config2, uint64(id)),
	}
	e := engine.NewLocal(x.NewGame(), agents, engine.WithStartingPlayer(starting))
	return e.Run()
}

// NewAgent builds the agent described by config. offset is added to its seed
// so that repeated games differ.
func NewAgent(name string, config metrics.AgentConfig, offset uint64) agent.Agent {
	if config.Kind == KindRandom {
		return agent.NewRandomAgent(name, config.Seed+offset)
	}

	options := []searcher.Option{
		searcher.WithSeed(config.Seed + offset),
		searcher.WithMetrics(),
	}
	if config.Exploration > 0 {
		options = append(options, searcher.WithExplorationConstant(config.Exploration))
	}
	return agent.NewSearchAgent(name, config.Iterations, config.Duration, options...)
}
