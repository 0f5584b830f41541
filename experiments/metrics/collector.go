package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Strategy   string
	Duration   time.Duration
	Expansions int // States taken off the frontier (path search) or nodes visited (game tree)
	Generated  int // Successors produced
	Pruned     int // Successors skipped: unsafe, already seen, or cut off
}

type MoveMetric struct {
	Step      int
	Player    string
	Move      string
	StateHash uint64 // hash of the state the move produced
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // "" for a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(strategy string)
	AddExpansion()
	AddGenerated(n int)
	AddPruned()
	Complete() SearchMetric
}

type collector struct {
	strategy   string
	startTime  time.Time
	expansions atomic.Int64
	generated  atomic.Int64
	pruned     atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(strategy string) {
	m.strategy = strategy
	m.startTime = time.Now()
	m.expansions.Store(0)
	m.generated.Store(0)
	m.pruned.Store(0)
}

func (m *collector) AddExpansion() {
	m.expansions.Add(1)
}

func (m *collector) AddGenerated(n int) {
	m.generated.Add(int64(n))
}

func (m *collector) AddPruned() {
	m.pruned.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Strategy:   m.strategy,
		Duration:   time.Since(m.startTime),
		Expansions: int(m.expansions.Load()),
		Generated:  int(m.generated.Load()),
		Pruned:     int(m.pruned.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string)  {}
func (m *dummyCollector) AddExpansion()          {}
func (m *dummyCollector) AddGenerated(n int)     {}
func (m *dummyCollector) AddPruned()             {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
