// Package config loads process configuration from the environment.
//
// A .env file in the working directory is read first (development only, a
// missing file is not an error), then variables are parsed into Config.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

// Config holds every setting the commands read.
type Config struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"` // json | console

	WordsFile  string       `env:"WORDS_FILE"`
	WordLength int          `env:"WORD_LENGTH" envDefault:"5"`
	MaxGuesses int          `env:"MAX_GUESSES" envDefault:"6"`
	Scoring    game.Scoring `env:"SCORING" envDefault:"membership"`
	Assertions bool         `env:"SOLVER_ASSERTIONS" envDefault:"false"`

	Port      string `env:"PORT" envDefault:"5175"`
	DailySalt string `env:"DAILY_SALT" envDefault:"wordle-solver"`

	BenchRuns    int    `env:"BENCH_RUNS" envDefault:"1000"`
	BenchWorkers int    `env:"BENCH_WORKERS" envDefault:"0"`
	BenchSeed    uint64 `env:"BENCH_SEED" envDefault:"0"`
}

// Load reads .env files (if any) and parses the environment.
func Load(files ...string) (Config, error) {
	_ = godotenv.Load(files...)
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate rejects settings the solver cannot run with.
func (c Config) Validate() error {
	if c.WordLength <= 0 {
		return fmt.Errorf("config: WORD_LENGTH must be positive, got %d", c.WordLength)
	}
	if c.MaxGuesses <= 0 {
		return fmt.Errorf("config: MAX_GUESSES must be positive, got %d", c.MaxGuesses)
	}
	switch c.Scoring {
	case game.ScoringMembership, game.ScoringTwoPass:
	default:
		return fmt.Errorf("config: unknown SCORING %q", c.Scoring)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("config: unknown LOG_FORMAT %q", c.LogFormat)
	}
	if c.BenchRuns < 0 || c.BenchWorkers < 0 {
		return fmt.Errorf("config: BENCH_RUNS and BENCH_WORKERS must not be negative")
	}
	return nil
}
