package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel(""))
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("INFO"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "json", "info")

	logger.Debug("hidden")
	logger.Info("page rendered", "path", "/about")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "page rendered", entry["msg"])
	assert.Equal(t, "/about", entry["path"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNewWithWriter_TextAddsSource(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "text", "debug")

	logger.Debug("content reloaded")

	assert.Contains(t, buf.String(), "content reloaded")
	assert.Contains(t, buf.String(), "source=")
}
