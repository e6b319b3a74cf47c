package morph

import (
	"time"

	"github.com/basedlsg/PLugg-sub000/internal/domain"
	apperrors "github.com/basedlsg/PLugg-sub000/internal/errors"
)

const (
	DefaultMomentumDecay         = 0.85
	DefaultAccelerationFactor    = 0.15
	DefaultMaxVelocity           = 2.0
	DefaultHistoryCapacity       = 50
	DefaultAnticipationInfluence = 0.1
	DefaultAnticipationTTL       = 1500 * time.Millisecond
	DefaultBlendDuration         = 300 * time.Millisecond
	DefaultMaxDelta              = 100 * time.Millisecond

	DefaultSpeed = 1.0
	MinSpeed     = 0.25
	MaxSpeed     = 3.0

	settleEpsilon = 1e-4
)

// DefaultSpeeds is the tuned per-parameter speed table. Parameters not listed
// move at DefaultSpeed.
func DefaultSpeeds() map[domain.Param]float64 {
	return map[domain.Param]float64{
		domain.Brilliance:       1.5,
		domain.Motion:           1.0,
		domain.Space:            0.5,
		domain.Warmth:           0.75,
		domain.Drift:            0.25,
		domain.AirGain:          2.0,
		domain.AttackSharpness:  3.0,
		domain.AttackTime:       2.5,
		domain.Graininess:       1.5,
		domain.FilterResonance:  1.25,
		domain.FilterCutoff:     2.0,
		domain.BodyLayerSustain: 0.75,
		domain.ReleaseTime:      1.0,
		domain.HarmonicContent:  1.25,
		domain.HarmonicDensity:  0.5,
		domain.Complexity:       0.5,
		domain.Tempo:            0.75,
		domain.DriftSpeed:       0.25,
	}
}

type Config struct {
	MomentumDecay      float64
	AccelerationFactor float64
	MaxVelocity        float64
	// Speeds overrides entries of DefaultSpeeds.
	Speeds map[domain.Param]float64

	HistoryCapacity int

	AnticipationInfluence float64
	AnticipationTTL       time.Duration
	BlendDuration         time.Duration
	// MaxDelta caps the step passed to Update.
	MaxDelta time.Duration
}

func DefaultConfig() Config {
	return Config{
		MomentumDecay:         DefaultMomentumDecay,
		AccelerationFactor:    DefaultAccelerationFactor,
		MaxVelocity:           DefaultMaxVelocity,
		HistoryCapacity:       DefaultHistoryCapacity,
		AnticipationInfluence: DefaultAnticipationInfluence,
		AnticipationTTL:       DefaultAnticipationTTL,
		BlendDuration:         DefaultBlendDuration,
		MaxDelta:              DefaultMaxDelta,
	}
}

func (c Config) Validate() error {
	v := apperrors.NewValidator("morph")
	v.Range("momentumDecay", c.MomentumDecay, 0, 1)
	v.Check(c.MomentumDecay < 1, "momentumDecay", c.MomentumDecay, "must be below 1")
	v.Positive("accelerationFactor", c.AccelerationFactor).Range("accelerationFactor", c.AccelerationFactor, 0, 1)
	v.Positive("maxVelocity", c.MaxVelocity)
	v.MinInt("historyCapacity", c.HistoryCapacity, 1)
	v.Range("anticipationInfluence", c.AnticipationInfluence, 0, 1)
	v.Check(c.AnticipationTTL > 0, "anticipationTTL", c.AnticipationTTL, "must be positive")
	v.Check(c.BlendDuration > 0, "blendDuration", c.BlendDuration, "must be positive")
	v.Check(c.MaxDelta > 0, "maxDelta", c.MaxDelta, "must be positive")
	for p, speed := range c.Speeds {
		v.Check(p.Valid(), "speeds", p, "unknown parameter")
		v.Range("speeds."+p.String(), speed, MinSpeed, MaxSpeed)
	}
	return v.Err()
}

// speedTable resolves the speed of every parameter.
func (c Config) speedTable() [domain.NumParams]float64 {
	var table [domain.NumParams]float64
	for i := range table {
		table[i] = DefaultSpeed
	}
	for p, speed := range DefaultSpeeds() {
		table[p] = speed
	}
	for p, speed := range c.Speeds {
		table[p] = speed
	}
	return table
}
