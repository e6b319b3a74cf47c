package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/basedlsg/PLugg-sub000/internal/platform/correlation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"loud", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), tt.in)
	}
}

func TestNewLogger_JSONWithCorrelation(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "debug", "json")

	logger.DebugContext(correlation.WithID(context.Background(), "feedbeef"), "Engine: processed word", "word", "ocean")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "feedbeef", record["correlation_id"])
	assert.Equal(t, "ocean", record["word"])
}

func TestNewLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "warn", "text")

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
