package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)
	assert.Equal(t, 3, cfg.Tour.Workers)
	assert.Equal(t, 100, cfg.Tour.SleepMillis)
	assert.Zero(t, cfg.Tour.PaceHz)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("TOUR_WORKERS", "8")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 8, cfg.Tour.Workers)
	// untouched fields keep their defaults
	assert.Equal(t, 3, cfg.Tour.EnvSample)
}

func TestLoadOrDefault(t *testing.T) {
	t.Setenv("TOUR_WORKERS", "not-a-number")

	cfg := LoadOrDefault()
	assert.Equal(t, 3, cfg.Tour.Workers)
}

func TestLoadProgram(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "program.yaml")
	require.NoError(t, os.WriteFile(path, []byte("demos:\n  - time.sleep\n  - net.listen\n"), 0o644))

	p, err := LoadProgram(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"time.sleep", "net.listen"}, p.Demos)
}

func TestLoadProgramEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "program.yaml")
	require.NoError(t, os.WriteFile(path, []byte("demos: []\n"), 0o644))

	_, err := LoadProgram(path)
	assert.Error(t, err)
}

func TestLoadProgramMissing(t *testing.T) {
	_, err := LoadProgram(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
