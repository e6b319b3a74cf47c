package config

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/basedlsg/PLugg-sub000/internal/domain"
	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

// Config holds process-level settings for the wordsynth host. Component tuning
// is range-checked by each component when it is constructed.
type Config struct {
	LogLevel      string        `env:"LOG_LEVEL" default:"info"`
	LogFormat     string        `env:"LOG_FORMAT" default:"text"`
	MetricsAddr   string        `env:"METRICS_ADDR"`
	FrameInterval time.Duration `env:"FRAME_INTERVAL" default:"16ms"`
	EventBuffer   int           `env:"EVENT_BUFFER" default:"64"`

	PhoneticWeight   float64 `env:"WEIGHT_PHONETIC" default:"0.4"`
	SemanticWeight   float64 `env:"WEIGHT_SEMANTIC" default:"0.35"`
	SentimentWeight  float64 `env:"WEIGHT_SENTIMENT" default:"0.25"`
	ContextInfluence float64 `env:"CONTEXT_INFLUENCE" default:"0.5"`
	Smoothing        float64 `env:"SMOOTHING" default:"0.3"`
	DefaultScale     string  `env:"DEFAULT_SCALE" default:"pentatonic"`

	ShortTermSize  int     `env:"SHORT_TERM_SIZE" default:"5"`
	LongTermDecay  float64 `env:"LONG_TERM_DECAY" default:"0.95"`
	ParameterDecay float64 `env:"PARAMETER_DECAY" default:"0.9"`

	MomentumDecay         float64       `env:"MOMENTUM_DECAY" default:"0.85"`
	AccelerationFactor    float64       `env:"ACCELERATION_FACTOR" default:"0.15"`
	MaxVelocity           float64       `env:"MAX_VELOCITY" default:"2.0"`
	HistoryCapacity       int           `env:"HISTORY_CAPACITY" default:"50"`
	AnticipationInfluence float64       `env:"ANTICIPATION_INFLUENCE" default:"0.1"`
	AnticipationTTL       time.Duration `env:"ANTICIPATION_TTL" default:"1500ms"`
	BlendDuration         time.Duration `env:"BLEND_DURATION" default:"300ms"`

	// Speeds overrides per-parameter morph speeds, e.g. "tempo=2,space=0.75".
	Speeds string `env:"SPEEDS"`
}

// SpeedOverrides returns the parsed SPEEDS entries. Load has already rejected
// malformed input.
func (c *Config) SpeedOverrides() map[domain.Param]float64 {
	speeds, _ := parseSpeeds(c.Speeds)
	return speeds
}

func parseSpeeds(raw string) (map[domain.Param]float64, error) {
	speeds := make(map[domain.Param]float64)
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, value, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("SPEEDS entry %q must be name=value", entry)
		}
		p, ok := domain.ParamByName(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("SPEEDS entry %q names an unknown parameter", entry)
		}
		speed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("SPEEDS entry %q: %w", entry, err)
		}
		speeds[p] = speed
	}
	return speeds, nil
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got %q", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}
	if cfg.FrameInterval <= 0 {
		return fmt.Errorf("FRAME_INTERVAL must be positive, got %s", cfg.FrameInterval)
	}
	if cfg.EventBuffer < 1 {
		return fmt.Errorf("EVENT_BUFFER must be at least 1, got %d", cfg.EventBuffer)
	}
	if _, err := parseSpeeds(cfg.Speeds); err != nil {
		return err
	}
	return nil
}
