package searcher

import (
	"cmp"

	"checkers/game"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

type scoredPosition struct {
	pos   game.Position
	score int
}

// orderSuccessors returns a reordered copy of successors sorted by static evaluation, best first
// for the maximizing player when descending and best first for the minimizing player otherwise.
// Each successor is evaluated once.
func orderSuccessors(successors []game.Position, eval Evaluator, descending bool) []game.Position {
	scored := lo.Map(successors, func(pos game.Position, _ int) scoredPosition {
		return scoredPosition{pos: pos, score: eval.Evaluate(pos)}
	})
	slices.SortStableFunc(scored, func(a, b scoredPosition) int {
		return compareScores(a.score, b.score, descending)
	})
	return lo.Map(scored, func(s scoredPosition, _ int) game.Position {
		return s.pos
	})
}

func compareScores(a, b int, descending bool) int {
	if descending {
		return cmp.Compare(b, a)
	}
	return cmp.Compare(a, b)
}
