package meta

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the agent and game settings read from a YAML file.
type Config struct {
	InitialDepth      int           `yaml:"initial_depth"`
	MaxDepth          int           `yaml:"max_depth"`
	SafetyMargin      time.Duration `yaml:"safety_margin"`
	TableCapacity     int           `yaml:"table_capacity"`
	ClearTablePerMove bool          `yaml:"clear_table_per_move"`
	MoveBudget        time.Duration `yaml:"move_budget"`
	MaxTurns          int           `yaml:"max_turns"`
	Seed              uint64        `yaml:"seed"` // 0 seeds from the clock
	Games             int           `yaml:"games"`
}

func DefaultConfig() Config {
	return Config{
		InitialDepth:  InitialDepth,
		MaxDepth:      MaxDepth,
		SafetyMargin:  SafetyMargin,
		TableCapacity: TableCapacity,
		MoveBudget:    MoveBudget,
		MaxTurns:      MaxTurns,
		Games:         10,
	}
}

// Load reads a YAML config file. Keys missing from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.InitialDepth < 1 {
		return fmt.Errorf("initial_depth must be at least 1, got %d", c.InitialDepth)
	}
	if c.MaxDepth < c.InitialDepth {
		return fmt.Errorf("max_depth %d is below initial_depth %d", c.MaxDepth, c.InitialDepth)
	}
	if c.SafetyMargin < 0 {
		return fmt.Errorf("safety_margin must not be negative, got %v", c.SafetyMargin)
	}
	if c.MoveBudget <= c.SafetyMargin {
		return fmt.Errorf("move_budget %v must exceed safety_margin %v", c.MoveBudget, c.SafetyMargin)
	}
	if c.MaxTurns < 1 {
		return fmt.Errorf("max_turns must be at least 1, got %d", c.MaxTurns)
	}
	if c.Games < 0 {
		return fmt.Errorf("games must not be negative, got %d", c.Games)
	}
	return nil
}
