// SPDX-License-Identifier: MIT

// Package config loads the YAML configuration of the strassen command.
//
// Layering:
//   - Default() supplies every value.
//   - Load(path) overlays a YAML file (missing keys keep their defaults).
//   - The command applies explicit flags last.
//
// Validate is called by Load; callers that build a Config by hand call it too.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned (wrapped) for any value that fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Algorithm names accepted in bench.algorithms and by the multiply command.
const (
	AlgoNaive     = "naive"
	AlgoRecursive = "recursive"
	AlgoStrassen  = "strassen"
)

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the full document.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Bench   BenchConfig   `yaml:"bench"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LogConfig selects the slog level and handler.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// Format is text or json.
	Format string `yaml:"format"`
}

// BenchConfig drives the comparison runner.
type BenchConfig struct {
	Sizes      []int    `yaml:"sizes"`      // square orders, each a power of two
	Runs       int      `yaml:"runs"`       // repetitions per (algorithm, size)
	Workers    int      `yaml:"workers"`    // concurrent multiplications
	Seed       int64    `yaml:"seed"`       // base seed for the random operands
	Cutoff     int      `yaml:"cutoff"`     // naive fallback size for the recursive kernels
	Algorithms []string `yaml:"algorithms"` // subset of naive, recursive, strassen
}

// MetricsConfig controls the Prometheus textfile export.
type MetricsConfig struct {
	// Textfile is the output path; empty disables the export.
	Textfile string `yaml:"textfile"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info", Format: FormatText},
		Bench: BenchConfig{
			Sizes:      []int{16, 32, 64},
			Runs:       3,
			Workers:    4,
			Seed:       1,
			Cutoff:     1,
			Algorithms: []string{AlgoNaive, AlgoRecursive, AlgoStrassen},
		},
	}
}

// Load reads path over the defaults. An empty path returns Default().
//
// Errors:
//   - file read failures, YAML syntax errors and unknown keys;
//   - ErrInvalidConfig from Validate.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read the config file %s: %w", path, err)
	}
	if err = Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Decode unmarshals YAML into cfg, rejecting unknown keys.
// An empty document leaves cfg unchanged.
func Decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// Validate checks every field.
func (c Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q: %w", c.Log.Level, ErrInvalidConfig)
	}
	switch c.Log.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("log.format %q: %w", c.Log.Format, ErrInvalidConfig)
	}

	b := c.Bench
	if len(b.Sizes) == 0 {
		return fmt.Errorf("bench.sizes is empty: %w", ErrInvalidConfig)
	}
	for _, n := range b.Sizes {
		if n <= 0 || n&(n-1) != 0 {
			return fmt.Errorf("bench.sizes: %d is not a positive power of two: %w", n, ErrInvalidConfig)
		}
	}
	if b.Runs < 1 {
		return fmt.Errorf("bench.runs %d < 1: %w", b.Runs, ErrInvalidConfig)
	}
	if b.Workers < 1 {
		return fmt.Errorf("bench.workers %d < 1: %w", b.Workers, ErrInvalidConfig)
	}
	if b.Cutoff < 1 {
		return fmt.Errorf("bench.cutoff %d < 1: %w", b.Cutoff, ErrInvalidConfig)
	}
	if len(b.Algorithms) == 0 {
		return fmt.Errorf("bench.algorithms is empty: %w", ErrInvalidConfig)
	}
	for _, a := range b.Algorithms {
		if !IsAlgorithm(a) {
			return fmt.Errorf("bench.algorithms: unknown %q: %w", a, ErrInvalidConfig)
		}
	}

	return nil
}

// IsAlgorithm reports whether name is a known algorithm.
func IsAlgorithm(name string) bool {
	switch name {
	case AlgoNaive, AlgoRecursive, AlgoStrassen:
		return true
	}

	return false
}

// Marshal renders cfg as YAML (used by `strassen config`).
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
