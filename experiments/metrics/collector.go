package metrics

import (
	"sync/atomic"
	"time"

	"checkers/game"
)

type SearchMetric struct {
	Duration        time.Duration
	Nodes           int
	CompletedDepth  int // Deepest round committed, 0 if none completed
	DiscardedRounds int // Rounds voided by a timeout
	Score           int
	TableHits       int64
	TableMisses     int64
	TableEntries    int
}

type MoveMetric struct {
	Step   int
	Player game.Player
	SearchMetric
}

type GameMetric struct {
	ID             string
	StartingPlayer game.Player
	Winner         game.Player // NoPlayer for a draw or an unfinished game
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start()
	AddNode()
	CompleteDepth(depth, score int)
	DiscardDepth(depth int)
	SetTable(hits, misses int64, entries int)
	Complete() SearchMetric
}

type collector struct {
	startTime      time.Time
	nodes          atomic.Int64
	completedDepth atomic.Int32
	discarded      atomic.Int32
	score          atomic.Int64
	tableHits      int64
	tableMisses    int64
	tableEntries   int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.nodes.Store(0)
	m.completedDepth.Store(0)
	m.discarded.Store(0)
	m.score.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) CompleteDepth(depth, score int) {
	m.completedDepth.Store(int32(depth))
	m.score.Store(int64(score))
}

func (m *collector) DiscardDepth(depth int) {
	m.discarded.Add(1)
}

func (m *collector) SetTable(hits, misses int64, entries int) {
	m.tableHits = hits
	m.tableMisses = misses
	m.tableEntries = entries
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Duration:        time.Since(m.startTime),
		Nodes:           int(m.nodes.Load()),
		CompletedDepth:  int(m.completedDepth.Load()),
		DiscardedRounds: int(m.discarded.Load()),
		Score:           int(m.score.Load()),
		TableHits:       m.tableHits,
		TableMisses:     m.tableMisses,
		TableEntries:    m.tableEntries,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                                   {}
func (m *dummyCollector) AddNode()                                 {}
func (m *dummyCollector) CompleteDepth(depth, score int)           {}
func (m *dummyCollector) DiscardDepth(depth int)                   {}
func (m *dummyCollector) SetTable(hits, misses int64, entries int) {}
func (m *dummyCollector) Complete() SearchMetric                   { return SearchMetric{} }
