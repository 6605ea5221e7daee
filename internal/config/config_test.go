package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MINDFORGE_DB_PATH", "")
	t.Setenv("MINDFORGE_POLL_INTERVAL", "")
	t.Setenv("MINDFORGE_LOG_LEVEL", "")
	t.Setenv("MINDFORGE_LOG_ENCODING", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Contains(t, cfg.DBPath, ".mindforge.db")
	assert.Equal(t, time.Minute, cfg.PollInterval)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Encoding)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("MINDFORGE_DB_PATH", "/tmp/mf.db")
	t.Setenv("MINDFORGE_POLL_INTERVAL", "15s")
	t.Setenv("MINDFORGE_LOG_LEVEL", "debug")
	t.Setenv("MINDFORGE_LOG_ENCODING", "json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/mf.db", cfg.DBPath)
	assert.Equal(t, 15*time.Second, cfg.PollInterval)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Encoding)
}

func TestLoadBadDurationFallsBack(t *testing.T) {
	t.Setenv("MINDFORGE_POLL_INTERVAL", "soon")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, time.Minute, cfg.PollInterval)
}
