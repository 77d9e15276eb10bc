package searcher

import (
	"math"

	"checkers/game"
)

// Win sentinels bound every heuristic score.
const (
	MaxWin = math.MaxInt32
	MinWin = -MaxWin
)

const (
	manValue  = 1
	kingValue = 2
)

// Evaluator scores positions from the maximizing player's perspective.
type Evaluator struct {
	max game.Player
	min game.Player
}

func NewEvaluator(maxPlayer, minPlayer game.Player) Evaluator {
	return Evaluator{max: maxPlayer, min: minPlayer}
}

// Evaluate returns a win sentinel or 0 for end-of-game positions, and the material balance otherwise.
func (e Evaluator) Evaluate(pos game.Position) int {
	if pos.IsEOG() {
		return e.evaluateEOG(pos)
	}
	return e.evaluateMOG(pos)
}

func (e Evaluator) evaluateMOG(pos game.Position) int {
	maxPieces, minPieces := 0, 0
	for sq := 0; sq < game.NumSquares; sq++ {
		cell := pos.At(sq)
		value := manValue
		if cell.IsKing() {
			value = kingValue
		}
		switch cell.Owner() {
		case e.max:
			maxPieces += value
		case e.min:
			minPieces += value
		}
	}
	return maxPieces - minPieces
}

func (e Evaluator) evaluateEOG(pos game.Position) int {
	switch {
	case pos.IsWinner(e.max):
		return MaxWin
	case pos.IsWinner(e.min):
		return MinWin
	default: // Draw
		return 0
	}
}
