package searcher

import (
	"fmt"
	"time"

	"checkers/experiments/metrics"
	"checkers/game"
)

// session holds the state of one move decision across iterative deepening rounds.
type session struct {
	max      game.Player
	min      game.Player
	deadline game.Deadline
	margin   time.Duration
	eval     Evaluator
	hasher   *Zobrist
	table    *Table
	metrics  metrics.Collector

	timeout   bool
	bestIndex int
	bestValue int
}

func newSession(a *AlphaBeta, player game.Player, deadline game.Deadline) *session {
	return &session{
		max:       player,
		min:       player.Opponent(),
		deadline:  deadline,
		margin:    a.margin,
		eval:      NewEvaluator(player, player.Opponent()),
		hasher:    a.hasher,
		table:     a.table,
		metrics:   a.metrics,
		bestIndex: -1,
		bestValue: MinWin,
	}
}

// run searches every root successor depth-1 plies deeper. A round that times out anywhere is
// discarded; a completed round is committed only if its best value beats the committed one.
// It reports whether the round completed.
func (s *session) run(depth int, successors []game.Position) bool {
	s.timeout = false

	alpha, beta := MinWin, MaxWin
	value := MinWin
	roundIndex, roundValue := -1, MinWin

	for i, child := range successors {
		value = max(value, s.alphabeta(depth-1, alpha, beta, child.Player(), child))

		if s.expired() {
			break
		}

		if value > roundValue {
			roundIndex, roundValue = i, value
		}
		alpha = max(alpha, value)
	}

	if s.timeout {
		return false
	}

	if roundValue > s.bestValue {
		s.bestIndex, s.bestValue = roundIndex, roundValue
	}
	return true
}

// expired latches the timeout flag once the remaining time drops below the safety margin.
func (s *session) expired() bool {
	if !s.timeout && s.deadline.TimeUntil() < s.margin {
		s.timeout = true
	}
	return s.timeout
}

func (s *session) alphabeta(depth, alpha, beta int, player game.Player, pos game.Position) int {
	s.metrics.AddNode()

	if depth == 0 || pos.IsEOG() {
		return s.evaluateLeaf(depth, alpha, beta, player, pos)
	}

	key := s.hasher.Hash(pos)
	if entry, ok := s.table.Lookup(key); ok && entry.usable(depth) {
		if entry.Bound == Exact {
			return entry.Score
		}
		alpha, beta = entry.narrow(alpha, beta)
	}

	var score int
	if player == s.max {
		score = s.maxValue(depth, alpha, beta, pos)
	} else {
		score = s.minValue(depth, alpha, beta, pos)
	}

	// Values cut short by the deadline are partial and stay out of the table.
	if !s.timeout {
		s.table.Store(key, score, depth, player, alpha, beta)
	}
	return score
}

func (s *session) evaluateLeaf(depth, alpha, beta int, player game.Player, pos game.Position) int {
	score := s.eval.Evaluate(pos)
	key := s.hasher.Hash(pos)
	if entry, ok := s.table.entries[key]; !ok || entry.Depth < depth {
		s.table.Store(key, score, depth, player, alpha, beta)
	}
	return score
}

func (s *session) maxValue(depth, alpha, beta int, pos game.Position) int {
	value := MinWin
	for _, child := range s.expand(pos, true) {
		childValue := s.alphabeta(depth-1, alpha, beta, child.Player(), child)
		if s.expired() {
			break
		}

		value = max(value, childValue)
		if value >= beta {
			break
		}
		alpha = max(alpha, value)
	}
	return value
}

func (s *session) minValue(depth, alpha, beta int, pos game.Position) int {
	value := MaxWin
	for _, child := range s.expand(pos, false) {
		childValue := s.alphabeta(depth-1, alpha, beta, child.Player(), child)
		if s.expired() {
			break
		}

		value = min(value, childValue)
		if value <= alpha {
			break
		}
		beta = min(beta, value)
	}
	return value
}

// expand returns the ordered successors of a non-terminal position. A non-terminal position
// without successors means the rules disagree with the end-of-game test, which is fatal.
func (s *session) expand(pos game.Position, descending bool) []game.Position {
	successors := pos.Successors()
	if len(successors) == 0 {
		panic(fmt.Sprintf("non-terminal position has no successors:\n%v", pos))
	}
	return orderSuccessors(successors, s.eval, descending)
}
