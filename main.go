package main

import (
	"flag"
	"os"
	"time"

	"checkers/engine"
	"checkers/experiments"
	"checkers/meta"
	"checkers/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML config file, defaults are used when empty")
	mode := flag.String("mode", "play", "play a single self-play game or run an experiment: play | experiment")
	experiment := flag.String("experiment", "baseline", "experiment to run: baseline | depth")
	budget := flag.Duration("budget", 0, "per-move time budget, overrides the config")
	logLevel := flag.String("log-level", "info", "zerolog level")
	seed := flag.Uint64("seed", 0, "zobrist and random agent seed, overrides the config")
	out := flag.String("out", "experiments", "experiment output directory")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	cfg := meta.DefaultConfig()
	if *configPath != "" {
		cfg, err = meta.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}
	if *budget > 0 {
		cfg.MoveBudget = *budget
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	switch *mode {
	case "play":
		play(cfg)
	case "experiment":
		runExperiment(*experiment, cfg, *out)
	default:
		log.Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}

func play(cfg meta.Config) {
	red := newSearcher(cfg)
	white := newSearcher(cfg)
	e := engine.LocalEngine(red, white, engine.WithMoveBudget(cfg.MoveBudget), engine.WithMaxTurns(cfg.MaxTurns))

	winner, gameMetric, _ := e.Run()
	log.Info().
		Str("game", gameMetric.ID).
		Int("moves", gameMetric.TotalMoves).
		Dur("duration", gameMetric.Duration).
		Msgf("game over, winner: %v", winner)
}

func newSearcher(cfg meta.Config) *searcher.AlphaBeta {
	options := []searcher.Option{
		searcher.WithDepths(cfg.InitialDepth, cfg.MaxDepth),
		searcher.WithSafetyMargin(cfg.SafetyMargin),
		searcher.WithTableCapacity(cfg.TableCapacity),
	}
	if cfg.ClearTablePerMove {
		options = append(options, searcher.WithClearTablePerMove())
	}
	if cfg.Seed != 0 {
		options = append(options, searcher.WithSeed(cfg.Seed))
	}
	return searcher.NewAlphaBeta(options...)
}

func runExperiment(name string, cfg meta.Config, out string) {
	var summary experiments.Summary
	var err error
	switch name {
	case "baseline":
		summary, err = experiments.RunBaseline(cfg, out)
	case "depth":
		summary, err = experiments.RunDepth(cfg, out)
	default:
		log.Fatal().Str("experiment", name).Msg("unknown experiment")
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s experiment failed", name)
	}
	log.Info().Str("dir", summary.Dir).Interface("wins", summary.Wins).Int("draws", summary.Draws).Msgf("%s experiment stored", name)
}
