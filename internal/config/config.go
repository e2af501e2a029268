// Package config loads server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the server settings.
type Config struct {
	// HTTP Server
	Port              int    `env:"PORT" envDefault:"8080"`
	StaticPath        string `env:"STATIC_PATH"`
	CORSAllowedOrigin string `env:"CORS_ALLOWED_ORIGIN" envDefault:"*"`

	// Database
	DBPath string `env:"DB_PATH" envDefault:"./data/splitledger.db"`

	// Observability
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	MetricsEnabled bool   `env:"METRICS_ENABLED" envDefault:"true"`

	// BalanceFanout caps how many groups are loaded concurrently for a member rollup.
	BalanceFanout int `env:"BALANCE_FANOUT" envDefault:"4"`
}

// Load reads an optional .env file from the working directory, then parses
// the environment. Variables already set in the environment win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse builds a Config from the current environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var problems []string

	if c.Port < 1 || c.Port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", c.Port))
	}

	if strings.TrimSpace(c.DBPath) == "" {
		problems = append(problems, "database path cannot be empty")
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	if c.BalanceFanout < 1 {
		problems = append(problems, fmt.Sprintf("invalid balance fanout %d: must be at least 1", c.BalanceFanout))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}

	return nil
}

// LogValue keeps the startup log line compact.
func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("port", c.Port),
		slog.String("db_path", c.DBPath),
		slog.String("static_path", c.StaticPath),
		slog.String("log_level", c.LogLevel),
		slog.Bool("metrics", c.MetricsEnabled),
		slog.Int("balance_fanout", c.BalanceFanout),
	)
}
