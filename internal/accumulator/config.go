package accumulator

import (
	apperrors "github.com/basedlsg/PLugg-sub000/internal/errors"
)

const (
	DefaultShortTermSize  = 5
	DefaultLongTermDecay  = 0.95
	DefaultParameterDecay = 0.9

	sentimentHistoryCap = 100
	scaleHistoryCap     = 50
	trendWindow         = 10
	trendThreshold      = 0.05
	categorySaturation  = 5
)

type Config struct {
	// ShortTermSize is the capacity of the recent-words FIFO.
	ShortTermSize int
	// LongTermDecay is the per-second retention factor of long-term memory, in (0,1].
	LongTermDecay float64
	// ParameterDecay is the EMA weight kept by long-term parameters on each word, in [0,1].
	ParameterDecay float64
}

func DefaultConfig() Config {
	return Config{
		ShortTermSize:  DefaultShortTermSize,
		LongTermDecay:  DefaultLongTermDecay,
		ParameterDecay: DefaultParameterDecay,
	}
}

func (c Config) Validate() error {
	v := apperrors.NewValidator("accumulator")
	v.MinInt("shortTermSize", c.ShortTermSize, 1)
	v.Positive("longTermDecay", c.LongTermDecay).Range("longTermDecay", c.LongTermDecay, 0, 1)
	v.Range("parameterDecay", c.ParameterDecay, 0, 1)
	return v.Err()
}
