// Package config holds the settings a histogram Builder is created from.
package config

import (
	"fmt"
	"io"
	"math"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

type Config struct {
	// Type is the histogram produced by ComputeConfigured.
	Type     string  `toml:"type"`
	NumBins  int     `toml:"num_bins"`
	RangeMax float64 `toml:"range_max"`
	Sigma    float64 `toml:"sigma"`
	LogLevel string  `toml:"log_level"`
}

func Default() Config {
	return Config{
		Type:     "grayvalue",
		NumBins:  8,
		RangeMax: 255,
		Sigma:    3.0,
		LogLevel: "info",
	}
}

// Decode reads TOML from r over the defaults and validates the result.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Type == "" {
		return fmt.Errorf("type must not be empty")
	}
	if c.NumBins < 1 {
		return fmt.Errorf("num_bins must be at least 1, got: %d", c.NumBins)
	}
	if !(c.RangeMax > 0) || math.IsInf(c.RangeMax, 0) {
		return fmt.Errorf("range_max must be a positive number, got: %v", c.RangeMax)
	}
	if !(c.Sigma > 0) || math.IsInf(c.Sigma, 0) {
		return fmt.Errorf("sigma must be a positive number, got: %v", c.Sigma)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return nil
}

// Level returns the zerolog level for LogLevel, falling back to info.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
