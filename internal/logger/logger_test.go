package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "warn", Console: &buf})
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown", zap.Int("day", 3))
	require.NoError(t, log.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "WARN")
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "prepiq.log")
	log, err := New(Options{Quiet: true, File: path, MaxSizeMB: 1})
	require.NoError(t, err)

	log.Named("roadmap").Info("day completed", zap.Int("day", 5))
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	line := strings.TrimSpace(string(data))
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "day completed", entry["msg"])
	assert.Equal(t, "roadmap", entry["logger"])
	assert.Equal(t, float64(5), entry["day"])
}

func TestNewQuietWithoutFile(t *testing.T) {
	log, err := New(Options{Quiet: true})
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zap.ErrorLevel))
}

func TestNewBadLevel(t *testing.T) {
	_, err := New(Options{Level: "chatty"})
	assert.Error(t, err)
}
