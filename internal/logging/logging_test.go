package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazuruo/fill/internal/config"
)

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(config.LogConfig{Level: "warn", Format: "console"}, &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("clipboard unavailable")
	require.NoError(t, logger.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "clipboard unavailable")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(config.LogConfig{Level: "debug", Format: "json"}, &buf)
	require.NoError(t, err)

	logger.Debug("stage")
	require.NoError(t, logger.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "stage", entry["msg"])
}

func TestNew_Invalid(t *testing.T) {
	_, err := New(config.LogConfig{Level: "loud", Format: "console"}, &bytes.Buffer{})
	assert.Error(t, err)

	_, err = New(config.LogConfig{Level: "info", Format: "xml"}, &bytes.Buffer{})
	assert.Error(t, err)
}
