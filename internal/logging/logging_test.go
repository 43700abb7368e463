package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {

	log, err := New(Config{})
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))

	log, err = New(Config{Level: "debug", Development: true})
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))

	log, err = New(Config{Level: "warn"})
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))

	_, err = New(Config{Level: "loud"})
	assert.Error(t, err)

}

func TestNewWritesJSON(t *testing.T) {

	path := filepath.Join(t.TempDir(), "log.json")

	log, err := New(Config{Level: "info", OutputPaths: []string{path}})
	require.NoError(t, err)

	log.Info("evaluated", zap.String("scenario", "slerp"))
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	entry := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "evaluated", entry["msg"])
	assert.Equal(t, "slerp", entry["scenario"])
	assert.Equal(t, "info", entry["level"])

}
