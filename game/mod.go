package game

import "errors"

// ErrInvalidMove is returned by Play when the move index is outside [0, MoveCount()).
var ErrInvalidMove = errors.New("invalid move index")

// Outcome values reported by Score, from the perspective of the player who
// made the move leading into the state.
const (
	Win  = 1.0
	Draw = 0.5
	Loss = 0.0
)

// State should be immutable - Play always returns a new successor and leaves
// the receiver untouched.
//
// Moves are addressed by index: any index in [0, MoveCount()) is legal, and
// MoveCount() is 0 once the game is over. Two players alternate moves.
type State interface {
	// Score is only meaningful on terminal states.
	Score() float64
	IsGameOver() bool
	MoveCount() int
	Play(index int) (State, error)
	String() string
}
