// Package config loads configuration from environment variables with
// defaults suitable for local development. Keys use the NEWSDESK_ prefix,
// e.g. NEWSDESK_SERVER_ADDR, NEWSDESK_DATABASE_URL.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
}

// ServerConfig holds HTTP listener parameters. DiagAddr serves the metrics
// endpoint on a separate listener.
type ServerConfig struct {
	Addr     string `mapstructure:"addr"`
	DiagAddr string `mapstructure:"diag_addr"`
}

// DatabaseConfig holds connection parameters for PostgreSQL.
type DatabaseConfig struct {
	URL             string        `mapstructure:"url"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

func setDefaults(v *viper.Viper) {
	// Defaults double as key registration so AutomaticEnv can see them.
	v.SetDefault("server.addr", ":3333")
	v.SetDefault("server.diag_addr", ":9999")
	v.SetDefault("database.url", "postgres://localhost:5432/newsdesk?sslmode=disable")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 30*time.Minute)
}

// Load builds the configuration from defaults overridden by environment
// variables.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("NEWSDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("database url must not be empty")
	}

	return &cfg, nil
}
