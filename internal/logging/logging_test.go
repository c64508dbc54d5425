package logging

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/config"
)

func TestSetupLevel(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		development bool
		want        logrus.Level
	}{
		{"production info", "info", false, logrus.InfoLevel},
		{"production warn", "warn", false, logrus.WarnLevel},
		{"development raises to debug", "info", true, logrus.DebugLevel},
		{"development keeps trace", "trace", true, logrus.TraceLevel},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			log := logrus.New()
			err := Setup(log, config.Log{Level: test.level}, test.development)
			require.NoError(t, err)
			assert.Equal(t, test.want, log.GetLevel())
			assert.Empty(t, log.Hooks)
		})
	}
}

func TestSetupInvalidLevel(t *testing.T) {
	err := Setup(logrus.New(), config.Log{Level: "loud"}, false)
	assert.Error(t, err)
}

func TestSetupFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mines.log")
	log := logrus.New()
	log.SetOutput(io.Discard)

	err := Setup(log, config.Log{
		Level:      "info",
		File:       path,
		MaxSize:    1,
		MaxBackups: 1,
		MaxAge:     1,
	}, false)
	require.NoError(t, err)
	require.Len(t, log.Hooks[logrus.InfoLevel], 1)

	log.WithField("session", "abc").Info("session won")

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(b, &entry))
	assert.Equal(t, "session won", entry["msg"])
	assert.Equal(t, "abc", entry["session"])
}
