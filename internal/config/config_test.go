package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-directory/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.True(t, cfg.Seed.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("USERDIR_SERVER_ADDR", "127.0.0.1:9090")
	t.Setenv("USERDIR_LOG_FORMAT", "json")
	t.Setenv("USERDIR_SEED_ENABLED", "false")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.Seed.Enabled)
}
