package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, 25, cfg.FocusMinutes)
	require.Equal(t, "205", cfg.AccentColor)
	require.False(t, cfg.Debug)
}

func TestLoadParsesAndBackfills(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("focus_minutes: 50\nusername: Marc\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 50, cfg.FocusMinutes)
	require.Equal(t, "Marc", cfg.Username)
	require.Equal(t, "205", cfg.AccentColor)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{:::"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
