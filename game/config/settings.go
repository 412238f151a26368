package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/wricardo/lights-out-game/game/engine"
)

var ErrInvalidConfig = errors.New("invalid configuration")

const (
	MinDimension = 1
	MaxDimension = 32

	// DefaultMaxCells keeps the exhaustive search within a few seconds
	DefaultMaxCells = 20
)

// Settings holds the tool configuration
type Settings struct {
	LevelsFile string `yaml:"levels_file"`
	Rows       int    `yaml:"rows"`
	Cols       int    `yaml:"cols"`
	Seed       int64  `yaml:"seed"`
	MaxCells   int    `yaml:"max_cells"`
	LogLevel   string `yaml:"log_level"`
}

// Default returns the settings used when no file is present
func Default() *Settings {
	return &Settings{
		LevelsFile: "levels.json",
		Rows:       engine.DefaultRows,
		Cols:       engine.DefaultCols,
		Seed:       0,
		MaxCells:   DefaultMaxCells,
		LogLevel:   "info",
	}
}

// Load reads settings from a YAML file on top of the defaults. A missing file
// yields the defaults.
func Load(path string) (*Settings, error) {
	settings := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// Validate checks the settings for usable values
func (s *Settings) Validate() error {
	if s.LevelsFile == "" {
		return fmt.Errorf("%w: levels_file is required", ErrInvalidConfig)
	}
	if s.Rows < MinDimension || s.Rows > MaxDimension {
		return fmt.Errorf("%w: rows must be between %d and %d, got %d", ErrInvalidConfig, MinDimension, MaxDimension, s.Rows)
	}
	if s.Cols < MinDimension || s.Cols > MaxDimension {
		return fmt.Errorf("%w: cols must be between %d and %d, got %d", ErrInvalidConfig, MinDimension, MaxDimension, s.Cols)
	}
	if s.MaxCells < 1 {
		return fmt.Errorf("%w: max_cells must be positive, got %d", ErrInvalidConfig, s.MaxCells)
	}
	if _, err := zerolog.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Level returns the parsed log level, info when unset or invalid
func (s *Settings) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(s.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}
