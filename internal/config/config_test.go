package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	m := NewManagerWithDir(t.TempDir())

	cfg, err := m.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, DefaultDashboardURL, cfg.DashboardURL)
	assert.Empty(t, cfg.LogLevel)
}

func TestSaveAndLoad(t *testing.T) {
	m := NewManagerWithDir(t.TempDir())

	require.NoError(t, m.Save(&Config{
		APIURL:   "http://localhost:8080/api",
		LogLevel: "debug",
	}))

	cfg, err := m.Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api", cfg.APIURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	// Unset fields still fall back to defaults
	assert.Equal(t, DefaultDashboardURL, cfg.DashboardURL)
}

func TestEnvOverrides(t *testing.T) {
	m := NewManagerWithDir(t.TempDir())
	require.NoError(t, m.Save(&Config{APIURL: "http://from-file"}))

	t.Setenv(EnvAPIURL, "http://from-env")
	t.Setenv(EnvLogLevel, "trace")

	cfg, err := m.Load()
	require.NoError(t, err)
	assert.Equal(t, "http://from-env", cfg.APIURL)
	assert.Equal(t, "trace", cfg.LogLevel)
}

func TestLoadMalformedConfig(t *testing.T) {
	dir := t.TempDir()
	m := NewManagerWithDir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{nope"), 0600))

	_, err := m.Load()
	assert.Error(t, err)
}

func TestSessionPath(t *testing.T) {
	dir := t.TempDir()
	m := NewManagerWithDir(dir)
	assert.Equal(t, filepath.Join(dir, SessionFileName), m.SessionPath())
}
