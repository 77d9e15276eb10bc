package searcher

import (
	"time"

	"checkers/game"

	"golang.org/x/exp/rand"
)

// mockPosition is a synthetic game tree node. Squares 0..15 encode the node id as pairs of
// red and white men (materially neutral) so every node hashes differently; squares 16..31 hold
// |score| men of one colour so the material evaluation from red's perspective equals score.
type mockPosition struct {
	id       int
	score    int
	player   game.Player
	eog      bool
	winner   game.Player
	children []game.Position
	onExpand func()
}

func (m *mockPosition) Player() game.Player {
	return m.player
}

func (m *mockPosition) IsEOG() bool {
	return m.eog
}

func (m *mockPosition) IsWinner(player game.Player) bool {
	return m.eog && m.winner == player
}

func (m *mockPosition) At(sq int) game.Cell {
	switch {
	case sq < 0 || sq >= game.NumSquares:
		return game.Invalid
	case sq < 16:
		if m.id&(1<<(sq/2)) == 0 {
			return game.Empty
		}
		if sq%2 == 0 {
			return game.RedMan
		}
		return game.WhiteMan
	case sq-16 < abs(m.score):
		if m.score > 0 {
			return game.RedMan
		}
		return game.WhiteMan
	default:
		return game.Empty
	}
}

func (m *mockPosition) Successors() []game.Position {
	if m.onExpand != nil {
		m.onExpand()
	}
	return m.children
}

func (m *mockPosition) Pass() game.Position {
	return &mockPosition{id: m.id, score: m.score, player: m.player.Opponent()}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// node builds a mock position; children are moved by the opponent of player.
func node(id, score int, player game.Player, children ...*mockPosition) *mockPosition {
	m := &mockPosition{id: id, score: score, player: player}
	for _, child := range children {
		m.children = append(m.children, child)
	}
	return m
}

// randomTree builds a complete tree of the given depth and branching factor with scores in [-10, 10].
func randomTree(r *rand.Rand, depth, branching int, player game.Player, nextID *int) *mockPosition {
	*nextID++
	m := &mockPosition{id: *nextID, score: r.Intn(21) - 10, player: player}
	if depth == 0 {
		return m
	}
	for i := 0; i < branching; i++ {
		m.children = append(m.children, randomTree(r, depth-1, branching, player.Opponent(), nextID))
	}
	return m
}

// minimax is an unpruned reference search.
func minimax(pos game.Position, depth int, eval Evaluator, maxPlayer game.Player) int {
	if depth == 0 || pos.IsEOG() {
		return eval.Evaluate(pos)
	}
	if pos.Player() == maxPlayer {
		value := MinWin
		for _, child := range pos.Successors() {
			value = max(value, minimax(child, depth-1, eval, maxPlayer))
		}
		return value
	}
	value := MaxWin
	for _, child := range pos.Successors() {
		value = min(value, minimax(child, depth-1, eval, maxPlayer))
	}
	return value
}

type fixedDeadline time.Duration

func (d fixedDeadline) TimeUntil() time.Duration {
	return time.Duration(d)
}

// countdownDeadline has plenty of time left for a fixed number of checks, then none.
type countdownDeadline struct {
	checks int
}

func (d *countdownDeadline) TimeUntil() time.Duration {
	if d.checks <= 0 {
		return 0
	}
	d.checks--
	return time.Hour
}

// switchDeadline expires once tripped.
type switchDeadline struct {
	expired bool
}

func (d *switchDeadline) TimeUntil() time.Duration {
	if d.expired {
		return 0
	}
	return time.Hour
}

func testSearcher(options ...Option) *AlphaBeta {
	return NewAlphaBeta(append([]Option{WithSeed(7)}, options...)...)
}
