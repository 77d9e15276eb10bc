package searcher

import (
	"testing"

	"checkers/game"

	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	t.Run("score inside the window is exact", func(t *testing.T) {
		require.Equal(t, Exact, NewEntry(5, 3, game.Red, 0, 10).Bound)
	})

	t.Run("score at or below alpha is a lower bound", func(t *testing.T) {
		require.Equal(t, LowerBound, NewEntry(0, 3, game.Red, 0, 10).Bound)
		require.Equal(t, LowerBound, NewEntry(-4, 3, game.Red, 0, 10).Bound)
	})

	t.Run("score at or above beta is an upper bound", func(t *testing.T) {
		require.Equal(t, UpperBound, NewEntry(10, 3, game.Red, 0, 10).Bound)
		require.Equal(t, UpperBound, NewEntry(12, 3, game.Red, 0, 10).Bound)
	})

	t.Run("entry records depth and player", func(t *testing.T) {
		entry := NewEntry(5, 3, game.White, 0, 10)
		require.Equal(t, Entry{Score: 5, Depth: 3, Bound: Exact, Player: game.White}, entry)
	})
}

func TestEntryUsable(t *testing.T) {
	t.Run("only strictly deeper entries are trusted", func(t *testing.T) {
		entry := Entry{Depth: 4}
		require.True(t, entry.usable(3))
		require.False(t, entry.usable(4))
		require.False(t, entry.usable(5))
	})
}

func TestEntryNarrow(t *testing.T) {
	t.Run("lower bound raises alpha", func(t *testing.T) {
		alpha, beta := Entry{Score: 4, Bound: LowerBound}.narrow(0, 10)
		require.Equal(t, 4, alpha)
		require.Equal(t, 10, beta)
	})

	t.Run("lower bound never lowers alpha", func(t *testing.T) {
		alpha, _ := Entry{Score: -4, Bound: LowerBound}.narrow(0, 10)
		require.Equal(t, 0, alpha)
	})

	t.Run("upper bound lowers beta", func(t *testing.T) {
		alpha, beta := Entry{Score: 6, Bound: UpperBound}.narrow(0, 10)
		require.Equal(t, 0, alpha)
		require.Equal(t, 6, beta)
	})

	t.Run("upper bound never raises beta", func(t *testing.T) {
		_, beta := Entry{Score: 16, Bound: UpperBound}.narrow(0, 10)
		require.Equal(t, 10, beta)
	})
}

func TestTable(t *testing.T) {
	t.Run("lookup misses an absent key", func(t *testing.T) {
		table := NewTable(0)

		_, ok := table.Lookup(1)

		require.False(t, ok)
		require.Equal(t, int64(1), table.Stats().Misses)
	})

	t.Run("store overwrites regardless of depth", func(t *testing.T) {
		table := NewTable(0)
		table.Store(1, 7, 6, game.Red, MinWin, MaxWin)
		table.Store(1, 3, 2, game.Red, MinWin, MaxWin)

		entry, ok := table.Lookup(1)

		require.True(t, ok)
		require.Equal(t, 3, entry.Score)
		require.Equal(t, 2, entry.Depth)
		require.Equal(t, 1, table.Len())
		require.Equal(t, int64(1), table.Stats().Hits)
	})

	t.Run("storing a new key at capacity resets the table", func(t *testing.T) {
		table := NewTable(2)
		table.Store(1, 1, 1, game.Red, MinWin, MaxWin)
		table.Store(2, 2, 1, game.Red, MinWin, MaxWin)
		table.Store(2, 3, 1, game.Red, MinWin, MaxWin) // Existing key, no reset
		require.Equal(t, int64(0), table.Stats().Resets)

		table.Store(3, 4, 1, game.Red, MinWin, MaxWin)

		require.Equal(t, 1, table.Len())
		require.Equal(t, int64(1), table.Stats().Resets)
		_, ok := table.Lookup(1)
		require.False(t, ok)
		entry, ok := table.Lookup(3)
		require.True(t, ok)
		require.Equal(t, 4, entry.Score)
	})

	t.Run("unbounded table keeps growing", func(t *testing.T) {
		table := NewTable(0)
		for key := uint64(0); key < 1000; key++ {
			table.Store(key, 0, 1, game.Red, MinWin, MaxWin)
		}
		require.Equal(t, 1000, table.Len())
	})

	t.Run("clear drops entries", func(t *testing.T) {
		table := NewTable(0)
		table.Store(1, 1, 1, game.Red, MinWin, MaxWin)

		table.Clear()

		require.Equal(t, 0, table.Len())
		require.Equal(t, 0, table.Stats().Entries)
	})

	t.Run("stats render as text", func(t *testing.T) {
		table := NewTable(0)
		table.Store(1, 1, 1, game.Red, MinWin, MaxWin)
		require.Contains(t, table.Stats().String(), "entries: 1")
	})
}
