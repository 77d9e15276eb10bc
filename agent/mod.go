package agent

import (
	"checkers/experiments/metrics"
	"checkers/game"

	"golang.org/x/exp/rand"
)

type Agent interface {
	// FindMove returns the chosen successor of pos and performance metrics (if collected) of the decision
	FindMove(pos game.Position, deadline game.Deadline) (game.Position, metrics.SearchMetric)
}

// Random plays a uniformly random successor. It is the baseline opponent in experiments.
type Random struct {
	r *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{r: rand.New(rand.NewSource(seed))}
}

func (a *Random) FindMove(pos game.Position, deadline game.Deadline) (game.Position, metrics.SearchMetric) {
	if pos.IsEOG() {
		return pos.Pass(), metrics.SearchMetric{}
	}
	successors := pos.Successors()
	return successors[a.r.Intn(len(successors))], metrics.SearchMetric{}
}
