package app

import (
	"errors"
	"fmt"
	"slices"

	"github.com/specialistvlad/romanparse/internal/output"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	BatchPaths []string // hcl files or directories
	Numerals   []string // converted once each, in order

	Output    string
	LogFormat string
	LogLevel  string
	Workers   int
	Prompt    string
}

// LogLevels and LogFormats list the accepted logging settings.
var (
	LogLevels  = []string{"debug", "info", "warn", "error"}
	LogFormats = []string{"text", "json"}
)

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.BatchPaths) > 0 && len(cfg.Numerals) > 0 {
		return nil, errors.New("numerals and batch paths cannot be combined")
	}
	if !slices.Contains(output.Formats, cfg.Output) {
		return nil, fmt.Errorf("invalid output %q: must be 'text', 'json', or 'yaml'", cfg.Output)
	}
	if !slices.Contains(LogFormats, cfg.LogFormat) {
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	if !slices.Contains(LogLevels, cfg.LogLevel) {
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("invalid workers %d: must be at least 1", cfg.Workers)
	}
	return &cfg, nil
}
