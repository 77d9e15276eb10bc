package engine

import (
	"checkers/experiments/metrics"
	"checkers/game"
)

type Engine interface {
	// Run plays a game till there's a winner, a draw or a max number of turns is reached
	Run() (winner game.Player, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
