package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTaskvaultHome_EnvVarTakesPriority(t *testing.T) {
	home := filepath.Join(t.TempDir(), "custom-home")
	t.Setenv("TASKVAULT_HOME", home)

	got, err := GetTaskvaultHome()
	require.NoError(t, err)
	assert.Equal(t, home, got)

	// The directory must exist after resolution
	info, err := os.Stat(home)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestGetTaskvaultHome_DefaultsUnderUserHome(t *testing.T) {
	t.Setenv("TASKVAULT_HOME", "")
	t.Setenv("HOME", t.TempDir())

	got, err := GetTaskvaultHome()
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(got), ".taskvault")

	info, err := os.Stat(got)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestGetDefaultDataFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("TASKVAULT_HOME", home)

	path, err := GetDefaultDataFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "data", "tasks.csv"), path)
}

func TestGetDefaultConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("TASKVAULT_HOME", home)

	path, err := GetDefaultConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "config.yaml"), path)
}
