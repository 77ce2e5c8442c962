package obs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
	assert.Equal(t, slog.LevelInfo, parseLevel("chatty"))
}

func TestLoggerTagsService(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, "users", "info")
	log.Debug("hidden")
	log.Info("listening", "addr", ":8091")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "users", line["service"])
	assert.Equal(t, "listening", line["msg"])
	assert.Equal(t, ":8091", line["addr"])
}
