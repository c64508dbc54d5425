package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper/internal/mines"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	config, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ModeDevelopment, config.Mode)
	assert.Equal(t, mines.GameParams{Width: 9, Height: 9, MineCount: 10}, config.Game)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
mode: production
seed: 42
game:
  width: 30
  height: 16
  mine_count: 99
log:
  level: debug
  file: /tmp/mines.log
`)

	config, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ModeProduction, config.Mode)
	assert.Equal(t, uint64(42), config.Seed)
	assert.Equal(t, mines.GameParams{Width: 30, Height: 16, MineCount: 99}, config.Game)
	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "/tmp/mines.log", config.Log.File)
	assert.Equal(t, 3, config.Log.MaxBackups)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "game:\n  width: 30\n  height: 16\n  mine_count: 99\n")
	t.Setenv("MINES_WIDTH", "8")
	t.Setenv("MINES_MINE_COUNT", "5")
	t.Setenv("MINES_SEED", "7")
	t.Setenv("LOG_LEVEL", "warn")

	config, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, mines.GameParams{Width: 8, Height: 16, MineCount: 5}, config.Game)
	assert.Equal(t, uint64(7), config.Seed)
	assert.Equal(t, "warn", config.Log.Level)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		file string
		env  map[string]string
	}{
		{name: "malformed yaml", file: "game: [1, 2"},
		{name: "bad mode", file: "mode: staging"},
		{name: "zero width", file: "game:\n  width: 0\n  height: 9\n  mine_count: 1\n"},
		{name: "bad level", env: map[string]string{"LOG_LEVEL": "loud"}},
		{name: "bad width env", env: map[string]string{"MINES_WIDTH": "wide"}},
		{name: "bad seed env", env: map[string]string{"MINES_SEED": "-1"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := writeConfig(t, test.file)
			for k, v := range test.env {
				t.Setenv(k, v)
			}
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestDevelopment(t *testing.T) {
	config := Default()
	config.Mode = ModeProduction

	t.Setenv("DEVELOPMENT", "1")
	assert.True(t, config.Development())

	t.Setenv("DEVELOPMENT", "0")
	assert.False(t, config.Development())
}

func TestFields(t *testing.T) {
	fields := Default().Fields()
	assert.Equal(t, "9:9:10", fields["game"])
	assert.Equal(t, "info", fields["log_level"])
}
