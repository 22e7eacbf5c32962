package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the configuration for a simulation run
type Config struct {
	FrameDelay          time.Duration `json:"frame_delay" yaml:"frame_delay"`
	AliveMarker         string        `json:"alive_marker" yaml:"alive_marker"`
	AliveGlyph          string        `json:"alive_glyph" yaml:"alive_glyph"`
	DeadGlyph           string        `json:"dead_glyph" yaml:"dead_glyph"`
	MaxGenerations      int           `json:"max_generations" yaml:"max_generations"`
	AutoRestart         bool          `json:"auto_restart" yaml:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold" yaml:"stagnation_threshold"`
	Interactive         bool          `json:"interactive" yaml:"interactive"`
	HistorySize         int           `json:"history_size" yaml:"history_size"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		FrameDelay:          400 * time.Millisecond,
		AliveMarker:         "x",
		AliveGlyph:          "x",
		DeadGlyph:           ".",
		MaxGenerations:      0, // run until interrupted
		AutoRestart:         false,
		StagnationThreshold: 5,
		Interactive:         true,
		HistorySize:         200,
	}
}

// LoadConfig loads configuration from a YAML or JSON file, chosen by extension
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		err = json.Unmarshal(data, &config)
	default:
		err = yaml.Unmarshal(data, &config)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}
	return config, nil
}

// Validate checks that the configuration can drive a simulation
func (c Config) Validate() error {
	if c.FrameDelay < 0 {
		return errors.Errorf("frame_delay must not be negative, got %v", c.FrameDelay)
	}
	marker := []rune(c.AliveMarker)
	if len(marker) != 1 {
		return errors.Errorf("alive_marker must be a single character, got %q", c.AliveMarker)
	}
	if unicode.IsSpace(marker[0]) {
		return errors.Errorf("alive_marker must not be whitespace, got %q", c.AliveMarker)
	}
	if c.MaxGenerations < 0 {
		return errors.Errorf("max_generations must not be negative, got %d", c.MaxGenerations)
	}
	if c.StagnationThreshold < 1 {
		return errors.Errorf("stagnation_threshold must be positive, got %d", c.StagnationThreshold)
	}
	if c.HistorySize < 1 {
		return errors.Errorf("history_size must be positive, got %d", c.HistorySize)
	}
	return nil
}

// AliveRune returns the board character denoting a living cell
func (c Config) AliveRune() rune {
	if marker := []rune(c.AliveMarker); len(marker) > 0 {
		return marker[0]
	}
	return 'x'
}
