package experiments

import (
	"fmt"
	"runtime"
	"time"

	"checkers/agent"
	"checkers/engine"
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/meta"
	"checkers/searcher"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

type Option func(r *runner)

type runner struct {
	parallel int
	maxTurns int
	margin   time.Duration
}

// WithParallel bounds the number of games played at the same time.
func WithParallel(n int) Option {
	return func(r *runner) {
		if n > 0 {
			r.parallel = n
		}
	}
}

func WithMaxTurns(turns int) Option {
	return func(r *runner) {
		if turns > 0 {
			r.maxTurns = turns
		}
	}
}

func WithSafetyMargin(margin time.Duration) Option {
	return func(r *runner) {
		if margin >= 0 {
			r.margin = margin
		}
	}
}

// Summary tallies the outcome of an experiment run.
type Summary struct {
	RunID string
	Dir   string
	Games []metrics.GameRecord
	Wins  map[int]int // AgentConfig.ID -> games won
	Draws int
}

// RunBaseline pits the configured searcher against the random agent.
func RunBaseline(cfg meta.Config, outDir string) (Summary, error) {
	searcherConfig := configFrom(1, cfg)
	random := metrics.AgentConfig{ID: 0, Kind: metrics.RandomAgent, Budget: cfg.MoveBudget, Seed: cfg.Seed}
	matchUps := [][]metrics.AgentConfig{{searcherConfig, random}}

	return Run("baseline", []metrics.AgentConfig{random, searcherConfig}, matchUps, cfg.Games, outDir,
		WithMaxTurns(cfg.MaxTurns), WithSafetyMargin(cfg.SafetyMargin))
}

// RunDepth pairs searchers with growing maximum depth against a shallow baseline searcher.
func RunDepth(cfg meta.Config, outDir string) (Summary, error) {
	baseline := configFrom(0, cfg)
	baseline.MaxDepth = baseline.InitialDepth

	configs := []metrics.AgentConfig{baseline}
	matchUps := [][]metrics.AgentConfig{}
	for i, extra := range []int{1, 2, 4} {
		config := configFrom(i+1, cfg)
		config.MaxDepth = config.InitialDepth + extra
		configs = append(configs, config)
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	return Run("depth", configs, matchUps, cfg.Games, outDir,
		WithMaxTurns(cfg.MaxTurns), WithSafetyMargin(cfg.SafetyMargin))
}

func configFrom(id int, cfg meta.Config) metrics.AgentConfig {
	return metrics.AgentConfig{
		ID:            id,
		Kind:          metrics.AlphaBetaAgent,
		InitialDepth:  cfg.InitialDepth,
		MaxDepth:      cfg.MaxDepth,
		Budget:        cfg.MoveBudget,
		TableCapacity: cfg.TableCapacity,
		Seed:          cfg.Seed,
	}
}

// Run plays games per match up, alternating which agent plays red, and stores the agent configs,
// game records and move records under <outDir>/<name>/<run id>.
func Run(name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig, games int, outDir string, options ...Option) (Summary, error) {
	r := &runner{ // Default values
		parallel: runtime.NumCPU(),
		maxTurns: meta.MaxTurns,
		margin:   meta.SafetyMargin,
	}
	for _, option := range options {
		option(r)
	}

	for mi, matchUp := range matchUps {
		if len(matchUp) != 2 {
			return Summary{}, fmt.Errorf("match up %d has %d agents, want 2", mi+1, len(matchUp))
		}
	}

	writer, err := metrics.NewWriter(outDir, name)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return Summary{}, fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Str("run", writer.RunID()).Msgf("starting %s experiment...", name)

	gameRecords := make([]metrics.GameRecord, len(matchUps)*games)
	moveRecords := make([][]metrics.MoveRecord, len(gameRecords))

	var g errgroup.Group
	g.SetLimit(r.parallel)
	for mi, matchUp := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchUp[0], matchUp[1])

		for i := 0; i < games; i++ {
			count := mi*games + i
			red, white := matchUp[0], matchUp[1]
			if i%2 == 1 {
				red, white = white, red
			}

			g.Go(func() error {
				winner, gameMetric, moveMetrics := r.runGame(red, white, uint64(count))
				gameRecords[count] = metrics.GameRecord{
					ID:         count + 1,
					Agent1:     red.ID,
					Agent2:     white.ID,
					GameMetric: gameMetric,
				}
				moveRecords[count] = lo.Map(moveMetrics, func(mm metrics.MoveMetric, _ int) metrics.MoveRecord {
					return metrics.MoveRecord{Game: count + 1, MoveMetric: mm}
				})
				log.Info().Msgf("completed matchup %d of %d game %d with winner: %v", mi+1, len(matchUps), i+1, winner)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	log.Info().Msgf("completed %s experiment", name)

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return Summary{}, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(lo.Flatten(moveRecords)); err != nil {
		return Summary{}, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	summary := tally(gameRecords, configs)
	summary.RunID = writer.RunID()
	summary.Dir = writer.Dir()
	return summary, nil
}

func tally(records []metrics.GameRecord, configs []metrics.AgentConfig) Summary {
	summary := Summary{Games: records, Wins: map[int]int{}}
	for _, config := range configs {
		summary.Wins[config.ID] = lo.CountBy(records, func(record metrics.GameRecord) bool {
			return winnerID(record) == config.ID
		})
	}
	summary.Draws = lo.CountBy(records, func(record metrics.GameRecord) bool {
		return record.Winner == game.NoPlayer
	})
	return summary
}

func winnerID(record metrics.GameRecord) int {
	switch record.Winner {
	case game.Red:
		return record.Agent1
	case game.White:
		return record.Agent2
	default:
		return -1
	}
}

// runGame plays a single game with fresh agents, so no table is shared between games.
func (r *runner) runGame(red, white metrics.AgentConfig, index uint64) (game.Player, metrics.GameMetric, []metrics.MoveMetric) {
	e := engine.LocalEngine(r.newAgent(red, index), r.newAgent(white, index),
		engine.WithPlayerBudget(game.Red, red.Budget),
		engine.WithPlayerBudget(game.White, white.Budget),
		engine.WithMaxTurns(r.maxTurns),
	)
	return e.Run()
}

func (r *runner) newAgent(config metrics.AgentConfig, index uint64) agent.Agent {
	switch config.Kind {
	case metrics.RandomAgent:
		return agent.NewRandom(config.Seed + index)
	default:
		options := []searcher.Option{
			searcher.WithSafetyMargin(r.margin),
			searcher.WithTableCapacity(config.TableCapacity),
			searcher.WithMetrics(),
		}
		if config.InitialDepth > 0 && config.MaxDepth >= config.InitialDepth {
			options = append(options, searcher.WithDepths(config.InitialDepth, config.MaxDepth))
		}
		if config.Seed != 0 {
			options = append(options, searcher.WithSeed(config.Seed))
		}
		return searcher.NewAlphaBeta(options...)
	}
}
