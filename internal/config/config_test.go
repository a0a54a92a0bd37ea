package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":3333", cfg.Server.Addr)
	assert.Equal(t, ":9999", cfg.Server.DiagAddr)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5, cfg.Database.MaxIdleConns)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("NEWSDESK_SERVER_ADDR", ":8080")
	t.Setenv("NEWSDESK_DATABASE_URL", "postgres://db:5432/other?sslmode=disable")
	t.Setenv("NEWSDESK_DATABASE_MAX_OPEN_CONNS", "25")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "postgres://db:5432/other?sslmode=disable", cfg.Database.URL)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
}
