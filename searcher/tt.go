package searcher

import (
	"fmt"

	"checkers/game"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
)

type Bound uint8

const (
	Exact Bound = iota
	LowerBound
	UpperBound
)

func (b Bound) String() string {
	switch b {
	case Exact:
		return "exact"
	case LowerBound:
		return "lower"
	case UpperBound:
		return "upper"
	default:
		return "unknown"
	}
}

// Entry is a memorised search result for one hash key.
type Entry struct {
	Score  int
	Depth  int
	Bound  Bound
	Player game.Player
}

// NewEntry classifies score against the (alpha, beta) window it was searched with.
func NewEntry(score, depth int, player game.Player, alpha, beta int) Entry {
	bound := Exact
	if score <= alpha {
		bound = LowerBound
	} else if score >= beta {
		bound = UpperBound
	}
	return Entry{Score: score, Depth: depth, Bound: bound, Player: player}
}

// usable reports whether the entry was searched strictly deeper than depth.
func (e Entry) usable(depth int) bool {
	return e.Depth > depth
}

// narrow applies a bound entry to the search window.
func (e Entry) narrow(alpha, beta int) (int, int) {
	switch e.Bound {
	case LowerBound:
		if e.Score > alpha {
			alpha = e.Score
		}
	case UpperBound:
		if e.Score < beta {
			beta = e.Score
		}
	}
	return alpha, beta
}

type TableStats struct {
	Entries int
	Hits    int64
	Misses  int64
	Stores  int64
	Resets  int64
}

func (s TableStats) String() string {
	return fmt.Sprintf("entries: %s, hits: %s, misses: %s, stores: %s, resets: %d",
		humanize.Comma(int64(s.Entries)), humanize.Comma(s.Hits), humanize.Comma(s.Misses),
		humanize.Comma(s.Stores), s.Resets)
}

// Table maps position hashes to search results. Writes always overwrite; the depth check
// only gates reads. A table at capacity is reset before a new key is stored.
// Table is not safe for concurrent use.
type Table struct {
	entries  map[uint64]Entry
	capacity int
	stats    TableStats
}

// NewTable returns an empty table holding at most capacity entries; capacity <= 0 is unbounded.
func NewTable(capacity int) *Table {
	return &Table{
		entries:  make(map[uint64]Entry),
		capacity: capacity,
	}
}

func (t *Table) Lookup(key uint64) (Entry, bool) {
	entry, ok := t.entries[key]
	if ok {
		t.stats.Hits++
	} else {
		t.stats.Misses++
	}
	return entry, ok
}

func (t *Table) Store(key uint64, score, depth int, player game.Player, alpha, beta int) {
	t.put(key, NewEntry(score, depth, player, alpha, beta))
}

func (t *Table) put(key uint64, entry Entry) {
	if t.capacity > 0 && len(t.entries) >= t.capacity {
		if _, ok := t.entries[key]; !ok {
			log.Warn().Msgf("transposition table reached capacity %d, resetting", t.capacity)
			t.entries = make(map[uint64]Entry, t.capacity)
			t.stats.Resets++
		}
	}
	t.entries[key] = entry
	t.stats.Stores++
}

func (t *Table) Len() int {
	return len(t.entries)
}

// Clear drops every entry. Counters are kept.
func (t *Table) Clear() {
	t.entries = make(map[uint64]Entry)
}

func (t *Table) Stats() TableStats {
	stats := t.stats
	stats.Entries = len(t.entries)
	return stats
}
