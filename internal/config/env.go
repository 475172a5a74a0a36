package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds the settings that may come from environment variables.
type Env struct {
	LogLevel  string `env:"ROMANPARSE_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"ROMANPARSE_LOG_FORMAT" envDefault:"text"`
	Output    string `env:"ROMANPARSE_OUTPUT" envDefault:"text"`
	Workers   int    `env:"ROMANPARSE_WORKERS" envDefault:"4"`
	Prompt    string `env:"ROMANPARSE_PROMPT" envDefault:"Input a Roman numeral to convert, or enter to quit."`
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv returns Env populated from the environment and its defaults.
func LoadEnv() (Env, error) {
	var cfg Env
	if err := ParseEnv(&cfg); err != nil {
		return Env{}, err
	}
	return cfg, nil
}
