package searcher

import (
	"fmt"
	"time"

	"checkers/game"

	"golang.org/x/exp/rand"
)

const pieceKinds = 4

// Zobrist hashes piece placements by XOR-ing one random key per occupied square and piece kind.
// Keys are not stable across processes unless the seed is fixed.
type Zobrist struct {
	keys [game.NumSquares][pieceKinds]uint64
}

// NewZobrist returns a hasher whose key table is generated from seed.
func NewZobrist(seed uint64) *Zobrist {
	r := rand.New(rand.NewSource(seed))
	z := &Zobrist{}
	for sq := range z.keys {
		for kind := range z.keys[sq] {
			z.keys[sq][kind] = r.Uint64()
		}
	}
	return z
}

// NewRandomZobrist returns a hasher seeded from the wall clock.
func NewRandomZobrist() *Zobrist {
	return NewZobrist(uint64(time.Now().UnixNano()))
}

func (z *Zobrist) Hash(pos game.Position) uint64 {
	var hash uint64
	for sq := 0; sq < game.NumSquares; sq++ {
		cell := pos.At(sq)
		if cell == game.Empty || cell == game.Invalid {
			continue
		}
		hash ^= z.key(sq, cell)
	}
	return hash
}

func (z *Zobrist) key(sq int, cell game.Cell) uint64 {
	return z.keys[sq][pieceKind(cell)]
}

// pieceKind maps a piece to its key column. Anything that is not a man or king panics.
func pieceKind(cell game.Cell) int {
	switch cell {
	case game.WhiteMan:
		return 0
	case game.RedMan:
		return 1
	case game.WhiteKing:
		return 2
	case game.RedKing:
		return 3
	default:
		panic(fmt.Sprintf("cannot hash cell %d: not a piece", cell))
	}
}
