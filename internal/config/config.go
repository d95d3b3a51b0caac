package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"promoted-ads/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log record.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger.
	Log configs.Logger `envPrefix:"LOG_"`

	// Store selects the persistence backend.
	Store configs.Store `envPrefix:"STORE_"`

	// Psql configures the PostgreSQL connection. Used when Store.Driver is
	// postgres.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// SQLite configures the embedded database. Used when Store.Driver is
	// sqlite.
	SQLite configs.SQLite `envPrefix:"SQLITE_"`

	// OTel configures trace export.
	OTel configs.OTel `envPrefix:"OTEL_"`
}

// Load reads configuration from environment variables into a Config. All
// fields are loaded with their specified defaults when no environment
// variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Store.Validate(); err != nil {
		return cfg, fmt.Errorf("store: %w", err)
	}
	return cfg, nil
}
