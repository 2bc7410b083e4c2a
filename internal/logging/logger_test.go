package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "json", Writer: &buf})
	require.NoError(t, err)

	WithComponent(logger, "detector").Debug("scored", "matches", 2)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "scored", rec["msg"])
	require.Equal(t, "detector", rec["component"])
	require.Equal(t, float64(2), rec["matches"])
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Writer: &buf})
	require.NoError(t, err)
	logger.Info("hidden")
	require.Zero(t, buf.Len())
	logger.Warn("shown")
	require.Contains(t, buf.String(), "shown")
}

func TestNew_UnsupportedFormat(t *testing.T) {
	_, err := New(Options{Format: "xml"})
	require.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, ParseLevel(" DEBUG "))
	require.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	require.Equal(t, slog.LevelError, ParseLevel("error"))
	require.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestFromContext_SessionID(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Format: "json", Writer: &buf})
	require.NoError(t, err)

	id := NewSessionID()
	require.Len(t, id, 36)
	ctx := WithSessionID(context.Background(), id)
	FromContext(ctx, logger).Info("hello")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, id, rec["session_id"])
}
