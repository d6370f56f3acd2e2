// meta/meta.go
package meta

// ITERATIONS defines the default number of search rounds per move.
const ITERATIONS = 1000

// GAMES defines the default number of games per experiment matchup.
const GAMES = 20

// MAX_TURNS caps the length of a game; every bundled game ends well before it.
const MAX_TURNS = 100

// OUT_DIR is where experiment records are stored by default.
const OUT_DIR = "experiments/results"
