package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"mcts/agent"
	"mcts/engine"
	"mcts/experiments"
	"mcts/game"
	"mcts/game/connectfour"
	"mcts/game/tictactoe"
	"mcts/meta"
	"mcts/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	gameName := flag.String("game", "tictactoe", "Game to play: tictactoe or connectfour")
	iterations := flag.Int("iterations", meta.ITERATIONS, "Number of search rounds per move")
	duration := flag.Duration("duration", 0, "Search time per move, overrides -iterations when set")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Random seed")
	human := flag.Bool("human", false, "Play against the search as the first player")
	experiment := flag.Bool("experiment", false, "Run the iterations-to-strength experiment")
	games := flag.Int("games", meta.GAMES, "Games per experiment matchup")
	out := flag.String("out", meta.OUT_DIR, "Directory for experiment records")
	showDepth := flag.Int("show-depth", 0, "Print the best path down to this depth after every search")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	newGame, err := gameFactory(*gameName)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid flags")
	}

	if *experiment {
		x := experiments.IterationsToStrength(newGame, *iterations, *games, *out)
		if _, err := x.Run(); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		return
	}

	newSearch := func(name string, seed uint64) agent.Agent {
		options := []searcher.Option{searcher.WithSeed(seed), searcher.WithMetrics()}
		if *showDepth > 0 {
			return agent.NewTracingSearchAgent(name, *iterations, *duration, os.Stdout, *showDepth, options...)
		}
		return agent.NewSearchAgent(name, *iterations, *duration, options...)
	}

	agents := []agent.Agent{newSearch("search1", *seed), newSearch("search2", *seed+1)}
	if *human {
		agents[0] = agent.NewHumanAgent("human", os.Stdin, os.Stdout)
	}

	e := engine.NewLocal(newGame(), agents)
	winner, gameMetric, _, err := e.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("game failed")
	}

	fmt.Println(e.State)
	if winner < 0 {
		fmt.Printf("Draw after %d moves\n", gameMetric.TotalMoves)
		return
	}
	fmt.Printf("%s wins after %d moves\n", agents[winner].Name(), gameMetric.TotalMoves)
}

func gameFactory(name string) (func() game.State, error) {
	switch name {
	case "tictactoe":
		return func() game.State { return tictactoe.New() }, nil
	case "connectfour":
		return func() game.State { return connectfour.New() }, nil
	}
	return nil, fmt.Errorf("unknown game %q", name)
}
