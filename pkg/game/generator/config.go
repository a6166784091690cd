package generator

import (
	"errors"
	"fmt"
	"math"
)

// RandomSeed asks for a seed drawn from system entropy at construction time
const RandomSeed int64 = -1

// MinDimension is the smallest width or height for which the start region
// lies strictly before the end region on both axes.
const MinDimension = 4

// ErrInvalidConfig is wrapped by every configuration error
var ErrInvalidConfig = errors.New("invalid maze configuration")

// ConfigError describes a single rejected configuration field
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s = %v: %s", ErrInvalidConfig, e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// Config holds the generation parameters
type Config struct {
	Width          int     // Size of the first grid index
	Height         int     // Size of the second grid index
	TreasureChance float64 // Probability that a corridor cell holds treasure
	EnemyChance    float64 // Probability that a corridor cell holds an enemy
	Seed           int64   // RandomSeed for a non-deterministic maze
}

// DefaultConfig returns a 16x16 maze with a sprinkling of treasure and enemies
func DefaultConfig() Config {
	return Config{
		Width:          16,
		Height:         16,
		TreasureChance: 0.05,
		EnemyChance:    0.05,
		Seed:           RandomSeed,
	}
}

// Validate checks the configuration and returns a *ConfigError for the first
// rejected field
func (c Config) Validate() error {
	if c.Width < MinDimension {
		return &ConfigError{Field: "width", Value: c.Width, Reason: fmt.Sprintf("must be at least %d", MinDimension)}
	}
	if c.Height < MinDimension {
		return &ConfigError{Field: "height", Value: c.Height, Reason: fmt.Sprintf("must be at least %d", MinDimension)}
	}
	if !isProbability(c.TreasureChance) {
		return &ConfigError{Field: "treasure_chance", Value: c.TreasureChance, Reason: "must be within [0, 1]"}
	}
	if !isProbability(c.EnemyChance) {
		return &ConfigError{Field: "enemy_chance", Value: c.EnemyChance, Reason: "must be within [0, 1]"}
	}
	return nil
}

func isProbability(p float64) bool {
	return !math.IsNaN(p) && p >= 0 && p <= 1
}
