package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"
)

// ErrInvalidConfig is wrapped by every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the parameters of a single run.
type Config struct {
	Entities int
	Ticks    uint64
	Duration time.Duration
	Interval time.Duration
	Score    int
	LogEvery uint64
	Profile  string
}

// DefaultConfig mirrors the flag defaults.
func DefaultConfig() Config {
	return Config{
		Entities: 1,
		Ticks:    1000,
		Score:    100,
		LogEvery: 100,
	}
}

func parseConfig(args []string, output io.Writer) (Config, error) {
	cfg := DefaultConfig()

	fs := flag.NewFlagSet("sim-run", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&cfg.Entities, "entities", cfg.Entities, "Number of entities to create. The first one is named Player.")
	fs.Uint64Var(&cfg.Ticks, "ticks", cfg.Ticks, "Tick budget for the run (0 for no budget).")
	fs.DurationVar(&cfg.Duration, "duration", cfg.Duration, "Wall-clock limit for the run (0 for no limit).")
	fs.DurationVar(&cfg.Interval, "interval", cfg.Interval, "Time between ticks (0 to tick back to back).")
	fs.IntVar(&cfg.Score, "score", cfg.Score, "Points added to the score before the run starts.")
	fs.Uint64Var(&cfg.LogEvery, "log-every", cfg.LogEvery, "Log a debug summary every N ticks.")
	fs.StringVar(&cfg.Profile, "profile", cfg.Profile, "Write a profile of the run: cpu or mem.")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments %v: %w", fs.Args(), ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations that cannot produce a bounded run.
func (c Config) Validate() error {
	if c.Entities < 0 {
		return fmt.Errorf("entities must not be negative, got %d: %w", c.Entities, ErrInvalidConfig)
	}
	if c.Duration < 0 {
		return fmt.Errorf("duration must not be negative, got %s: %w", c.Duration, ErrInvalidConfig)
	}
	if c.Interval < 0 {
		return fmt.Errorf("interval must not be negative, got %s: %w", c.Interval, ErrInvalidConfig)
	}
	if c.Ticks == 0 && c.Duration == 0 {
		return fmt.Errorf("one of ticks or duration is required: %w", ErrInvalidConfig)
	}
	switch c.Profile {
	case "", "cpu", "mem":
	default:
		return fmt.Errorf("unknown profile %q: %w", c.Profile, ErrInvalidConfig)
	}
	return nil
}
