// Package config assembles the runtime settings of the darkmaze binary from
// defaults, an optional .env file, environment variables and command-line
// flags, in increasing order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"darkmaze/pkg/game/generator"
)

// Environment variable names
const (
	EnvWidth          = "MAZE_WIDTH"
	EnvHeight         = "MAZE_HEIGHT"
	EnvTreasureChance = "MAZE_TREASURE_CHANCE"
	EnvEnemyChance    = "MAZE_ENEMY_CHANCE"
	EnvSeed           = "MAZE_SEED"
	EnvLang           = "MAZE_LANG"
	EnvLogLevel       = "MAZE_LOG_LEVEL"
	EnvHTTPAddr       = "MAZE_HTTP_ADDR"
)

// Config holds the application's configuration values.
type Config struct {
	Maze     generator.Config // Generation parameters
	Lang     string           // Catalogue language for user-facing text
	LogLevel string           // logrus level name
	HTTPAddr string           // Listen address used by -serve

	Serve       bool   // Run the HTTP server instead of printing a maze
	GUI         bool   // Open a window instead of printing a maze
	Interactive bool   // Keep prompting for regenerate/save/quit after printing
	Plain       bool   // Print the numeric debug dump instead of the coloured map
	NoColor     bool   // Disable colour in the coloured map
	DumpFile    string // Also write a devtools map dump to this file
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Maze:     generator.DefaultConfig(),
		Lang:     "en",
		LogLevel: "info",
		HTTPAddr: ":8080",
	}
}

// LoadDotEnv loads a .env file into the process environment if one exists.
// Variables already set in the environment win.
func LoadDotEnv(files ...string) error {
	err := godotenv.Load(files...)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load .env: %w", err)
}

// FromEnv overlays environment variables onto cfg
func FromEnv(cfg *Config) error {
	if err := intFromEnv(EnvWidth, &cfg.Maze.Width); err != nil {
		return err
	}
	if err := intFromEnv(EnvHeight, &cfg.Maze.Height); err != nil {
		return err
	}
	if err := floatFromEnv(EnvTreasureChance, &cfg.Maze.TreasureChance); err != nil {
		return err
	}
	if err := floatFromEnv(EnvEnemyChance, &cfg.Maze.EnemyChance); err != nil {
		return err
	}
	if v, ok := os.LookupEnv(EnvSeed); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("environment variable %s must be an integer: %w", EnvSeed, err)
		}
		cfg.Maze.Seed = seed
	}
	if v, ok := os.LookupEnv(EnvLang); ok {
		cfg.Lang = v
	} else if v, ok := os.LookupEnv("LANG"); ok {
		cfg.Lang = v
	}
	cfg.LogLevel = getEnvWithDefault(EnvLogLevel, cfg.LogLevel)
	cfg.HTTPAddr = getEnvWithDefault(EnvHTTPAddr, cfg.HTTPAddr)
	return nil
}

// ParseFlags overlays command-line flags and positional arguments onto cfg.
// Positional arguments are width, height and an optional seed.
func ParseFlags(cfg *Config, args []string, output io.Writer) error {
	fset := flag.NewFlagSet("darkmaze", flag.ContinueOnError)
	fset.SetOutput(output)

	fset.IntVar(&cfg.Maze.Width, "width", cfg.Maze.Width, "maze width (first index)")
	fset.IntVar(&cfg.Maze.Height, "height", cfg.Maze.Height, "maze height (second index)")
	fset.Float64Var(&cfg.Maze.TreasureChance, "treasure", cfg.Maze.TreasureChance, "probability that a corridor cell holds treasure")
	fset.Float64Var(&cfg.Maze.EnemyChance, "enemy", cfg.Maze.EnemyChance, "probability that a corridor cell holds an enemy")
	fset.Int64Var(&cfg.Maze.Seed, "seed", cfg.Maze.Seed, "random seed (-1 for a random maze)")
	fset.StringVar(&cfg.Lang, "lang", cfg.Lang, "language of user-facing text")
	fset.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	fset.StringVar(&cfg.HTTPAddr, "addr", cfg.HTTPAddr, "listen address for -serve")
	fset.BoolVar(&cfg.Serve, "serve", cfg.Serve, "serve mazes over HTTP")
	fset.BoolVar(&cfg.GUI, "gui", cfg.GUI, "show the maze in a window")
	fset.BoolVar(&cfg.Interactive, "interactive", cfg.Interactive, "prompt to regenerate after printing")
	fset.BoolVar(&cfg.Plain, "plain", cfg.Plain, "print the numeric debug dump")
	fset.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable coloured output")
	fset.StringVar(&cfg.DumpFile, "dump", cfg.DumpFile, "write a map dump to this file")

	if err := fset.Parse(args); err != nil {
		return err
	}

	rest := fset.Args()
	switch len(rest) {
	case 0:
		return nil
	case 2, 3:
	default:
		return fmt.Errorf("expected width height [seed], got %d arguments", len(rest))
	}

	var err error
	if cfg.Maze.Width, err = strconv.Atoi(rest[0]); err != nil {
		return fmt.Errorf("width must be an integer: %w", err)
	}
	if cfg.Maze.Height, err = strconv.Atoi(rest[1]); err != nil {
		return fmt.Errorf("height must be an integer: %w", err)
	}
	if len(rest) == 3 {
		if cfg.Maze.Seed, err = strconv.ParseInt(rest[2], 10, 64); err != nil {
			return fmt.Errorf("seed must be an integer: %w", err)
		}
	}
	return nil
}

// Load builds the configuration from defaults, .env, environment and args
func Load(args []string, output io.Writer) (Config, error) {
	cfg := Default()
	if err := LoadDotEnv(); err != nil {
		return cfg, err
	}
	if err := FromEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := ParseFlags(&cfg, args, output); err != nil {
		return cfg, err
	}
	if _, err := cfg.Level(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Maze.Validate()
}

// Level returns the parsed log level
func (c Config) Level() (logrus.Level, error) {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}

// NewLogger returns a text logger writing to w at the configured level
func (c Config) NewLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	lvl, err := c.Level()
	if err != nil {
		l.WithError(err).Warn("falling back to info level")
	}
	l.SetLevel(lvl)
	return l
}

func intFromEnv(key string, dst *int) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	*dst = n
	return nil
}

func floatFromEnv(key string, dst *float64) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("environment variable %s must be a number: %w", key, err)
	}
	*dst = f
	return nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
