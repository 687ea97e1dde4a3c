package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "analyzer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "window_hours: 24\ntop_n: 5\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 24.0, cfg.WindowHours)
	assert.Equal(t, 5, cfg.TopN)
	// Untouched fields keep the production defaults.
	assert.Equal(t, int64(20), cfg.Blocker.WatchSeconds)
	assert.Equal(t, int64(300), cfg.Blocker.BlockSeconds)
	assert.Equal(t, 3, cfg.Blocker.Chances)
}

func TestLoadConfig_BlockerTuning(t *testing.T) {
	path := writeConfig(t, "watch_seconds: 60\nblock_seconds: 900\nchances: 5\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, int64(60), cfg.Blocker.WatchSeconds)
	assert.Equal(t, int64(900), cfg.Blocker.BlockSeconds)
	assert.Equal(t, 5, cfg.Blocker.Chances)
	assert.Equal(t, 1.0, cfg.WindowHours)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_BadYAML(t *testing.T) {
	path := writeConfig(t, "window_hours: [not a number\n")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}
