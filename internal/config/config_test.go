package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, "/api/v1", cfg.Server.BasePath)
	assert.Equal(t, int64(10*1024*1024), cfg.Server.MaxUploadBytes)
	assert.Equal(t, "mongo", cfg.Store.Driver)
	assert.Equal(t, 120*time.Second, cfg.Completion.Timeout)
	assert.Equal(t, 4000, cfg.Completion.MaxTokens)
	assert.True(t, cfg.Auth.Required)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte("server:\n  base_path: planner/\nstore:\n  driver: redis\ncompletion:\n  timeout: 45s\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))
	t.Setenv("COMPLETION_MODEL", "test-model")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "/planner", cfg.Server.BasePath)
	assert.Equal(t, "redis", cfg.Store.Driver)
	assert.Equal(t, 45*time.Second, cfg.Completion.Timeout)
	assert.Equal(t, "test-model", cfg.Completion.Model)
}

func TestNormalizeBasePath(t *testing.T) {
	assert.Equal(t, "", normalizeBasePath("/"))
	assert.Equal(t, "", normalizeBasePath("  "))
	assert.Equal(t, "/make-server", normalizeBasePath("make-server/"))
}
