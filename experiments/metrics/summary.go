package metrics

import (
	"slices"

	"gonum.org/v1/gonum/stat"
)

// AgentSummary aggregates the games and searches of one agent config.
type AgentSummary struct {
	Agent  int // AgentConfig.ID
	Games  int
	Wins   int
	Draws  int
	Losses int

	Moves          int
	MeanIterations float64
	StdIterations  float64
	MeanMillis     float64 // Search time per move
	StdMillis      float64
}

func (s AgentSummary) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return (float64(s.Wins) + 0.5*float64(s.Draws)) / float64(s.Games)
}

// Summarize groups records by agent config, in ascending ID order. An agent
// playing both seats of a game is counted once per seat.
func Summarize(games []GameRecord, moves []MoveRecord) []AgentSummary {
	summaries := map[int]*AgentSummary{}
	get := func(id int) *AgentSummary {
		s, ok := summaries[id]
		if !ok {
			s = &AgentSummary{Agent: id}
			summaries[id] = s
		}
		return s
	}

	seats := make(map[int][2]int, len(games))
	for _, g := range games {
		seats[g.ID] = [2]int{g.Agent1, g.Agent2}
		for i, id := range seats[g.ID] {
			s := get(id)
			s.Games++
			switch g.Winner {
			case NoWinner:
				s.Draws++
			case i:
				s.Wins++
			default:
				s.Losses++
			}
		}
	}

	iterations := map[int][]float64{}
	millis := map[int][]float64{}
	for _, m := range moves {
		pair, ok := seats[m.Game]
		if !ok || m.Player < 0 || m.Player > 1 {
			continue
		}
		id := pair[m.Player]
		iterations[id] = append(iterations[id], float64(m.Iterations))
		millis[id] = append(millis[id], float64(m.Duration.Microseconds())/1000)
	}
	for id, xs := range iterations {
		s := get(id)
		s.Moves = len(xs)
		s.MeanIterations, s.StdIterations = meanStdDev(xs)
		s.MeanMillis, s.StdMillis = meanStdDev(millis[id])
	}

	ids := make([]int, 0, len(summaries))
	for id := range summaries {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	result := make([]AgentSummary, 0, len(ids))
	for _, id := range ids {
		result = append(result, *summaries[id])
	}
	return result
}

// meanStdDev returns a zero deviation for fewer than two samples.
func meanStdDev(xs []float64) (float64, float64) {
	switch len(xs) {
	case 0:
		return 0, 0
	case 1:
		return xs[0], 0
	}
	return stat.MeanStdDev(xs, nil)
}
