package metrics

import (
	"time"
)

type SearchMetric struct {
	Iterations   int
	Expansions   int
	PlayoutPlies int // Random moves simulated across all rollouts
	Duration     time.Duration
	RootClosed   bool // The whole tree below the root was solved
	IsTreeReused bool
}

type MoveMetric struct {
	Step   int
	Player int // Agent index
	SearchMetric
}

// NoWinner marks a drawn or unfinished game.
const NoWinner = -1

type GameMetric struct {
	StartingPlayer int // Agent index
	Winner         int // Agent index or NoWinner
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start()
	SetTreeReused(value bool)
	AddIteration()
	AddExpansion()
	AddPlayout(plies int)
	SetRootClosed()
	Complete() SearchMetric
}

// collector is not safe for concurrent use; searches run on a single goroutine.
type collector struct {
	startTime    time.Time
	iterations   int
	expansions   int
	playoutPlies int
	rootClosed   bool
	isTreeReused bool
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters of a previous search.
func (m *collector) Start() {
	*m = collector{startTime: time.Now()}
}

func (m *collector) SetTreeReused(value bool) {
	m.isTreeReused = value
}

func (m *collector) AddIteration() {
	m.iterations++
}

func (m *collector) AddExpansion() {
	m.expansions++
}

func (m *collector) AddPlayout(plies int) {
	m.playoutPlies += plies
}

func (m *collector) SetRootClosed() {
	m.rootClosed = true
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Iterations:   m.iterations,
		Expansions:   m.expansions,
		PlayoutPlies: m.playoutPlies,
		Duration:     time.Since(m.startTime),
		RootClosed:   m.rootClosed,
		IsTreeReused: m.isTreeReused,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                   {}
func (m *dummyCollector) SetTreeReused(value bool) {}
func (m *dummyCollector) AddIteration()            {}
func (m *dummyCollector) AddExpansion()            {}
func (m *dummyCollector) AddPlayout(plies int)     {}
func (m *dummyCollector) SetRootClosed()           {}
func (m *dummyCollector) Complete() SearchMetric   { return SearchMetric{} }
