package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration, read from the environment.
type Config struct {
	SocketPath string     `env:"NUB_SOCKET" envDefault:"/tmp/nub.sock"`
	LogLevel   slog.Level `env:"NUB_LOG_LEVEL" envDefault:"info"`

	// MapPath points at a YAML board map. Empty means the default arena.
	MapPath string `env:"NUB_MAP"`

	// Seed seeds move tie-breaks. Zero seeds from the clock.
	Seed uint64 `env:"NUB_SEED"`
}

// Load parses Config from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
