package config

import (
	"testing"
	"time"

	"github.com/basedlsg/PLugg-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.MetricsAddr)
	assert.Equal(t, 16*time.Millisecond, cfg.FrameInterval)
	assert.Equal(t, 64, cfg.EventBuffer)
	assert.Equal(t, 0.4, cfg.PhoneticWeight)
	assert.Equal(t, 0.35, cfg.SemanticWeight)
	assert.Equal(t, 0.25, cfg.SentimentWeight)
	assert.Equal(t, "pentatonic", cfg.DefaultScale)
	assert.Equal(t, 5, cfg.ShortTermSize)
	assert.Equal(t, 50, cfg.HistoryCapacity)
	assert.Equal(t, 1500*time.Millisecond, cfg.AnticipationTTL)
	assert.Equal(t, 300*time.Millisecond, cfg.BlendDuration)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("METRICS_ADDR", ":9090")
	t.Setenv("WEIGHT_SEMANTIC", "0.8")
	t.Setenv("BLEND_DURATION", "1s")
	t.Setenv("SHORT_TERM_SIZE", "8")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
	assert.Equal(t, 0.8, cfg.SemanticWeight)
	assert.Equal(t, time.Second, cfg.BlendDuration)
	assert.Equal(t, 8, cfg.ShortTermSize)
}

func TestLoad_SpeedOverrides(t *testing.T) {
	t.Setenv("SPEEDS", "tempo=2, space = 0.75,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, map[domain.Param]float64{domain.Tempo: 2, domain.Space: 0.75}, cfg.SpeedOverrides())
}

func TestLoad_NoSpeedOverrides(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.SpeedOverrides())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"log level", "LOG_LEVEL", "verbose", "LOG_LEVEL must be one of"},
		{"log format", "LOG_FORMAT", "xml", "LOG_FORMAT must be text or json"},
		{"frame interval", "FRAME_INTERVAL", "0s", "FRAME_INTERVAL must be positive"},
		{"event buffer", "EVENT_BUFFER", "0", "EVENT_BUFFER must be at least 1"},
		{"unparsable weight", "WEIGHT_PHONETIC", "heavy", "failed to load environment variables"},
		{"speed without value", "SPEEDS", "tempo", "must be name=value"},
		{"speed of unknown param", "SPEEDS", "wobble=2", "unknown parameter"},
		{"unparsable speed", "SPEEDS", "tempo=fast", `SPEEDS entry "tempo=fast"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
