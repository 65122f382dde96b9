package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.DataFile)
}

func TestLoadConfig_ReadsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "data_file: /tmp/custom/tasks.csv\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/custom/tasks.csv", cfg.DataFile)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_file: /tmp/tasks.csv\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/tasks.csv", cfg.DataFile)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_MalformedYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_file: [unclosed\n"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestResolveDataFile_PrefersConfiguredPath(t *testing.T) {
	cfg := &Config{DataFile: "/tmp/tasks.csv"}

	path, err := cfg.ResolveDataFile()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/tasks.csv", path)
}

func TestResolveDataFile_FallsBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("TASKVAULT_HOME", home)

	cfg := DefaultConfig()
	path, err := cfg.ResolveDataFile()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "data", "tasks.csv"), path)
}
