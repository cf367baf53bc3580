package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wordlink/adjacency"
)

// ErrNoDictionary is returned when neither flags nor config name a dictionary.
var ErrNoDictionary = errors.New("no dictionary configured (use --dict or the dictionary key)")

// Config is the CLI configuration, loadable from YAML:
//
//	dictionary: /usr/share/dict/words
//	mode: variable
//	prune: true
//	shuffle: true
//	seed: 42
//	max_depth: 12
//	max_expansions: 500000
//	timeout: 10s
//	log_level: warn
type Config struct {
	Dictionary    string         `yaml:"dictionary"`
	Mode          adjacency.Mode `yaml:"mode"`
	Prune         bool           `yaml:"prune"`
	Shuffle       bool           `yaml:"shuffle"`
	Seed          int64          `yaml:"seed"`
	MaxDepth      int            `yaml:"max_depth"`
	MaxExpansions int            `yaml:"max_expansions"`
	Timeout       time.Duration  `yaml:"timeout"`
	LogLevel      string         `yaml:"log_level"`
}

// DefaultConfig returns fixed-length mode, pruning on, identity order, no limits.
func DefaultConfig() Config {
	return Config{
		Mode:     adjacency.FixedLength,
		Prune:    true,
		LogLevel: "warn",
	}
}

// LoadConfig overlays the YAML file at path on DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Shuffled reports whether neighbors are explored in seeded random order.
// A non-zero seed turns shuffling on by itself.
func (c Config) Shuffled() bool { return c.Shuffle || c.Seed != 0 }

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Dictionary == "" {
		return ErrNoDictionary
	}
	if !c.Mode.Valid() {
		return fmt.Errorf("%w: %d", adjacency.ErrUnknownMode, int(c.Mode))
	}
	if c.MaxDepth < 0 || c.MaxExpansions < 0 || c.Timeout < 0 {
		return errors.New("max_depth, max_expansions and timeout must not be negative")
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}
