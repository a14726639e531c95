package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	m, err := NewManager()
	require.NoError(t, err)
	return m
}

func TestLoadCreatesDefaultConfig(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, "Zed", cfg.App.Name)
	assert.Equal(t, "~/.config/zed/settings.json", cfg.App.ConfigPath)
	assert.Equal(t, "json", cfg.App.ConfigType)
	assert.Equal(t, defaultSourceURL, cfg.Source.URL)
	assert.Equal(t, defaultTimeoutSec, cfg.Source.TimeoutSec)
	assert.Equal(t, "configs/zed.yaml", cfg.Output.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)

	configFile, err := GetConfigFile()
	require.NoError(t, err)
	_, err = os.Stat(configFile)
	assert.NoError(t, err, "default config file is written on first load")

	_, err = os.Stat(filepath.Join(filepath.Dir(configFile), "config.schema.json"))
	assert.NoError(t, err, "schema file is written alongside the config")
}

func TestLoadReadsExistingConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	configDir, err := GetConfigDir()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(configDir, dirPerm))

	body := []byte("app:\n  name: Helix\nsource:\n  timeout_sec: 10\n")
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), body, filePerm))

	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, "Helix", cfg.App.Name)
	assert.Equal(t, 10, cfg.Source.TimeoutSec)
	// Untouched keys keep their defaults.
	assert.Equal(t, defaultSourceURL, cfg.Source.URL)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("ZEDREF_OUTPUT_PATH", "out/custom.yaml")
	t.Setenv("ZEDREF_SOURCE_URL", "https://example.com/defaults.json")

	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, "out/custom.yaml", cfg.Output.Path)
	assert.Equal(t, "https://example.com/defaults.json", cfg.Source.URL)
}

func TestGetReturnsCopy(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.Load())

	cfg := m.Get()
	cfg.App.Name = "mutated"
	assert.Equal(t, "Zed", m.Get().App.Name)
}

func TestGetConfigDirHonorsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	got, err := GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "zedref"), got)
}
