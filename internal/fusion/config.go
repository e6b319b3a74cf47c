package fusion

import (
	"github.com/basedlsg/PLugg-sub000/internal/domain"
	apperrors "github.com/basedlsg/PLugg-sub000/internal/errors"
	"github.com/basedlsg/PLugg-sub000/internal/lexicon"
)

// Layer names a weight that SetWeights can change.
type Layer string

const (
	LayerPhonetic  Layer = "phonetic"
	LayerSemantic  Layer = "semantic"
	LayerSentiment Layer = "sentiment"
	LayerContext   Layer = "context"
)

const (
	DefaultContextInfluence      = 0.5
	DefaultMagicContextInfluence = 0.3
	DefaultSmoothing             = 0.3
)

// Weights are the relative layer weights. They are renormalized to sum to one
// before use, so only their ratios matter.
type Weights struct {
	Phonetic  float64 `json:"phonetic"`
	Semantic  float64 `json:"semantic"`
	Sentiment float64 `json:"sentiment"`
}

var DefaultWeights = Weights{Phonetic: 0.4, Semantic: 0.35, Sentiment: 0.25}

// Normalized scales w to sum to one.
func (w Weights) Normalized() Weights {
	sum := w.Phonetic + w.Semantic + w.Sentiment
	if sum <= 0 {
		return DefaultWeights.Normalized()
	}
	return Weights{
		Phonetic:  w.Phonetic / sum,
		Semantic:  w.Semantic / sum,
		Sentiment: w.Sentiment / sum,
	}
}

type Config struct {
	Weights Weights
	// ContextInfluence is how far context pulls a standard word, in [0,1].
	ContextInfluence float64
	// MagicContextInfluence replaces ContextInfluence for magic words.
	MagicContextInfluence float64
	// Smoothing is the share of the previous output kept on each call, in [0,1).
	Smoothing float64
	// DefaultScale is used when a word has no category.
	DefaultScale string
}

func DefaultConfig() Config {
	return Config{
		Weights:               DefaultWeights,
		ContextInfluence:      DefaultContextInfluence,
		MagicContextInfluence: DefaultMagicContextInfluence,
		Smoothing:             DefaultSmoothing,
		DefaultScale:          lexicon.DefaultScale,
	}
}

func (c Config) Validate() error {
	v := apperrors.NewValidator("fusion")
	v.Range("weights.phonetic", c.Weights.Phonetic, 0, maxWeight)
	v.Range("weights.semantic", c.Weights.Semantic, 0, maxWeight)
	v.Range("weights.sentiment", c.Weights.Sentiment, 0, maxWeight)
	v.Check(c.Weights.Phonetic+c.Weights.Semantic+c.Weights.Sentiment > 0, "weights", c.Weights, "must not all be zero")
	v.Range("contextInfluence", c.ContextInfluence, 0, 1)
	v.Range("magicContextInfluence", c.MagicContextInfluence, 0, 1)
	v.Range("smoothing", c.Smoothing, 0, 1)
	v.Check(c.Smoothing < 1, "smoothing", c.Smoothing, "must be below 1")
	v.Check(c.DefaultScale != "", "defaultScale", c.DefaultScale, "must not be empty")
	return v.Err()
}

const maxWeight = 1e6

// withLayers returns a copy of c with the given layer weights replaced.
func (c Config) withLayers(updates map[Layer]float64) (Config, error) {
	for layer, value := range updates {
		switch layer {
		case LayerPhonetic:
			c.Weights.Phonetic = value
		case LayerSemantic:
			c.Weights.Semantic = value
		case LayerSentiment:
			c.Weights.Sentiment = value
		case LayerContext:
			c.ContextInfluence = value
		default:
			return c, apperrors.ValidationError("fusion: unknown layer "+string(layer)).
				WithCause(domain.ErrInvalidConfig).
				WithField("field", "layer").
				WithField("value", string(layer))
		}
	}
	return c, c.Validate()
}
