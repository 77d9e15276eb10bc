package engine

import (
	"time"

	"checkers/agent"
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/meta"
	"checkers/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Option func(e *Local)

// Local runs both agents in-process, alternating turns from the starting position.
type Local struct {
	agents   map[game.Player]agent.Agent
	start    game.Position
	budgets  map[game.Player]time.Duration
	maxTurns int
}

func WithMoveBudget(budget time.Duration) Option {
	return func(e *Local) {
		if budget > 0 {
			e.budgets[game.Red] = budget
			e.budgets[game.White] = budget
		}
	}
}

// WithPlayerBudget sets the per-move budget of one player only.
func WithPlayerBudget(player game.Player, budget time.Duration) Option {
	return func(e *Local) {
		if budget > 0 {
			e.budgets[player] = budget
		}
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *Local) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// WithStart replaces the initial position.
func WithStart(pos game.Position) Option {
	return func(e *Local) {
		e.start = pos
	}
}

func LocalEngine(red, white agent.Agent, options ...Option) *Local {
	if red == nil || white == nil {
		panic("need an agent for each player")
	}
	e := &Local{ // Default values
		agents:   map[game.Player]agent.Agent{game.Red: red, game.White: white},
		start:    game.NewBoard(),
		budgets:  map[game.Player]time.Duration{game.Red: meta.MoveBudget, game.White: meta.MoveBudget},
		maxTurns: meta.MaxTurns,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the entire game loop until the game is over or the turn limit is hit.
func (e *Local) Run() (game.Player, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		ID:             uuid.NewString(),
		StartingPlayer: e.start.Player(),
		StartTime:      time.Now(),
	}
	log.Debug().Str("game", gameMetric.ID).Msgf("player %v is starting", e.start.Player())

	pos := e.start
	var moveMetrics []metrics.MoveMetric
	turn := 1
	for ; !pos.IsEOG() && turn <= e.maxTurns; turn++ {
		player := pos.Player()
		move, searchMetric := e.agents[player].FindMove(pos, game.DeadlineIn(e.budgets[player]))
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       player,
			SearchMetric: searchMetric,
		})

		pos = e.validate(pos, move)
	}

	winner := winnerOf(pos)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.Winner = winner
	gameMetric.TotalMoves = len(moveMetrics)

	if pos.IsEOG() {
		log.Debug().Str("game", gameMetric.ID).Msgf("game ended after %d moves, winner: %v", gameMetric.TotalMoves, winner)
	} else {
		log.Debug().Str("game", gameMetric.ID).Msgf("stopped after %d turns (no winner yet)", e.maxTurns)
	}
	return winner, gameMetric, moveMetrics
}

// validate returns move if it is a successor of pos, and the first successor otherwise.
func (e *Local) validate(pos, move game.Position) game.Position {
	successors := pos.Successors()
	if len(successors) == 0 {
		panic("no legal moves at all")
	}
	if move != nil && utils.FindIndex(successors, move) >= 0 {
		return move
	}
	log.Warn().Str("player", pos.Player().String()).Msg("agent returned an illegal move, forcing the first successor")
	return successors[0]
}

func winnerOf(pos game.Position) game.Player {
	switch {
	case !pos.IsEOG():
		return game.NoPlayer
	case pos.IsWinner(game.Red):
		return game.Red
	case pos.IsWinner(game.White):
		return game.White
	default:
		return game.NoPlayer
	}
}
