package searcher

import (
	"fmt"
	"time"

	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/meta"

	"github.com/rs/zerolog/log"
)

type Option func(a *AlphaBeta)

// AlphaBeta picks moves with iterative deepening alpha-beta search. It owns its transposition
// table, which persists across decisions for the lifetime of the agent.
type AlphaBeta struct {
	initialDepth int
	maxDepth     int
	margin       time.Duration
	capacity     int
	clearPerMove bool
	seed         uint64
	seeded       bool
	hasher       *Zobrist
	table        *Table
	metrics      metrics.Collector
}

// Result is the outcome of one decision.
type Result struct {
	Move  game.Position
	Index int // Index into the successor list, -1 for a pass
	Score int // Committed value, MinWin if no round completed
	Depth int // Last round that completed, 0 if none
}

func WithDepths(initial, maximum int) Option {
	return func(a *AlphaBeta) {
		a.initialDepth = initial
		a.maxDepth = maximum
	}
}

func WithSafetyMargin(margin time.Duration) Option {
	return func(a *AlphaBeta) {
		if margin >= 0 {
			a.margin = margin
		}
	}
}

// WithTableCapacity bounds the transposition table; capacity <= 0 leaves it unbounded.
func WithTableCapacity(capacity int) Option {
	return func(a *AlphaBeta) {
		a.capacity = capacity
	}
}

func WithClearTablePerMove() Option {
	return func(a *AlphaBeta) {
		a.clearPerMove = true
	}
}

// WithSeed fixes the Zobrist key table so hashes are reproducible.
func WithSeed(seed uint64) Option {
	return func(a *AlphaBeta) {
		a.seed = seed
		a.seeded = true
	}
}

// WithTable shares an existing table instead of allocating one.
func WithTable(table *Table) Option {
	return func(a *AlphaBeta) {
		if table != nil {
			a.table = table
		}
	}
}

func WithMetrics() Option {
	return func(a *AlphaBeta) {
		a.metrics = metrics.NewCollector()
	}
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	a := &AlphaBeta{ // Default values
		initialDepth: meta.InitialDepth,
		maxDepth:     meta.MaxDepth,
		margin:       meta.SafetyMargin,
		capacity:     meta.TableCapacity,
		metrics:      metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(a)
	}
	if a.initialDepth < 1 || a.maxDepth < a.initialDepth {
		panic(fmt.Sprintf("invalid search depths: initial %d, max %d", a.initialDepth, a.maxDepth))
	}
	if a.seeded {
		a.hasher = NewZobrist(a.seed)
	} else {
		a.hasher = NewRandomZobrist()
	}
	if a.table == nil {
		a.table = NewTable(a.capacity)
	}
	return a
}

// DecideMove returns the chosen successor of pos, or a pass if pos is already over.
func (a *AlphaBeta) DecideMove(pos game.Position, deadline game.Deadline) game.Position {
	return a.Search(pos, deadline).Move
}

// FindMove returns the chosen successor and the metrics of the decision.
func (a *AlphaBeta) FindMove(pos game.Position, deadline game.Deadline) (game.Position, metrics.SearchMetric) {
	result := a.Search(pos, deadline)
	return result.Move, a.metrics.Complete()
}

// Search runs iterative deepening from the initial to the maximum depth while time remains.
// Only rounds that complete before the deadline can change the chosen move; if none does,
// the first successor in generation order is returned.
func (a *AlphaBeta) Search(pos game.Position, deadline game.Deadline) Result {
	a.metrics.Start()
	if pos.IsEOG() {
		return Result{Move: pos.Pass(), Index: -1, Score: MinWin}
	}

	successors := pos.Successors()
	if len(successors) == 0 {
		panic(fmt.Sprintf("non-terminal position has no successors:\n%v", pos))
	}

	if a.clearPerMove {
		a.table.Clear()
	}
	before := a.table.Stats()

	s := newSession(a, pos.Player(), deadline)
	completed := 0
	for depth := a.initialDepth; depth <= a.maxDepth && deadline.TimeUntil() > a.margin; depth++ {
		if !s.run(depth, successors) {
			a.metrics.DiscardDepth(depth)
			log.Debug().Int("depth", depth).Msg("depth-discarded")
			break
		}
		completed = depth
		a.metrics.CompleteDepth(depth, s.bestValue)
		log.Debug().Int("depth", depth).Int("index", s.bestIndex).Int("value", s.bestValue).Msg("depth-complete")
	}

	index := s.bestIndex
	if index < 0 {
		index = 0
	}

	after := a.table.Stats()
	a.metrics.SetTable(after.Hits-before.Hits, after.Misses-before.Misses, after.Entries)
	log.Info().
		Str("player", pos.Player().String()).
		Int("depth", completed).
		Int("index", index).
		Int("value", s.bestValue).
		Str("table", after.String()).
		Msg("move-decided")

	return Result{Move: successors[index], Index: index, Score: s.bestValue, Depth: completed}
}
