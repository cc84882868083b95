package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "service.log")

	log, err := New(file, "info")
	require.NoError(t, err)

	log.Info("case %s created", "c-1")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "case c-1 created")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("", "verbose")
	assert.Error(t, err)
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	log, err := NewWithWriter(&buf, "warn")
	require.NoError(t, err)

	log.Info("hidden")
	log.Debug("hidden too")
	log.Warn("slot %d rejected", 3)
	log.Error("failed: %v", "boom")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "slot 3 rejected")
	assert.Contains(t, out, "failed: boom")
	assert.NoError(t, log.Close())
}
