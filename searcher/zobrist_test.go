package searcher

import (
	"testing"

	"checkers/game"

	"github.com/stretchr/testify/require"
)

type malformedPosition struct {
	mockPosition
}

func (m *malformedPosition) At(sq int) game.Cell {
	if sq == 3 {
		return game.RedMan | game.WhiteMan
	}
	return game.Empty
}

func TestZobristHash(t *testing.T) {
	z := NewZobrist(42)
	boards := randomBoards(5, 5)

	t.Run("hashing is deterministic", func(t *testing.T) {
		for _, pos := range boards {
			require.Equal(t, z.Hash(pos), z.Hash(pos))
		}
	})

	t.Run("hash does not depend on scan order", func(t *testing.T) {
		for _, pos := range boards {
			var reversed uint64
			for sq := game.NumSquares - 1; sq >= 0; sq-- {
				cell := pos.At(sq)
				if cell == game.Empty || cell == game.Invalid {
					continue
				}
				reversed ^= z.key(sq, cell)
			}
			require.Equal(t, z.Hash(pos), reversed)
		}
	})

	t.Run("same seed yields the same keys", func(t *testing.T) {
		other := NewZobrist(42)
		for _, pos := range boards {
			require.Equal(t, z.Hash(pos), other.Hash(pos))
		}
	})

	t.Run("different seeds yield different keys", func(t *testing.T) {
		other := NewZobrist(43)
		require.NotEqual(t, z.Hash(game.NewBoard()), other.Hash(game.NewBoard()))
	})

	t.Run("player to move is not part of the key", func(t *testing.T) {
		b := game.NewBoard()
		require.Equal(t, z.Hash(b), z.Hash(b.Pass()))
	})

	t.Run("different placements hash differently", func(t *testing.T) {
		seen := map[uint64]game.Position{}
		for _, pos := range game.NewBoard().Successors() {
			key := z.Hash(pos)
			require.NotContains(t, seen, key)
			seen[key] = pos
		}
	})

	t.Run("empty board hashes to zero", func(t *testing.T) {
		require.Equal(t, uint64(0), z.Hash(game.NewBoardFrom([game.NumSquares]game.Cell{}, game.Red)))
	})

	t.Run("malformed pieces are fatal", func(t *testing.T) {
		require.Panics(t, func() {
			z.Hash(&malformedPosition{})
		})
	})
}
