// Package config loads lectern's runtime configuration from the
// environment, optionally seeded from a .env file.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/abhisek/lectern/internal/llm"
)

// Config holds all runtime configuration.
type Config struct {
	LogLevel  string `env:"LECTERN_LOG_LEVEL" envDefault:"warn" validate:"oneof=debug info warn error"`
	LogFormat string `env:"LECTERN_LOG_FORMAT" envDefault:"console" validate:"oneof=console json"`

	// DBPath overrides the default event database location. Empty means
	// store.DefaultDBPath.
	DBPath string `env:"LECTERN_DB"`

	// RedisURL enables the response cache when set.
	RedisURL string        `env:"LECTERN_REDIS_URL"`
	CacheTTL time.Duration `env:"LECTERN_CACHE_TTL" envDefault:"24h" validate:"gte=0"`

	LLM llm.Config
}

// Load reads a .env file from the working directory if present, then parses
// the environment. Variables already set in the environment win over .env.
func Load() (Config, error) {
	_ = godotenv.Load()
	return parse(env.Options{})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
