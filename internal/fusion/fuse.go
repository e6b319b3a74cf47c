package fusion

import (
	"github.com/basedlsg/PLugg-sub000/internal/accumulator"
	"github.com/basedlsg/PLugg-sub000/internal/domain"
)

type layerSet uint8

const (
	fromPhonetic layerSet = 1 << iota
	fromSemantic
	fromSentiment
)

// weightedFields are blended across all three layer weights. Layers outside the
// set contribute the neutral value.
var weightedFields = []struct {
	param   domain.Param
	sources layerSet
}{
	{domain.Brilliance, fromPhonetic | fromSentiment},
	{domain.Motion, fromSemantic | fromSentiment},
	{domain.Space, fromSemantic | fromSentiment},
	{domain.Warmth, fromSemantic},
	{domain.Complexity, fromSemantic},
	{domain.Tempo, fromSentiment},
	{domain.DriftSpeed, fromSentiment},
	{domain.FilterCutoff, fromSentiment},
	{domain.HarmonicDensity, fromSentiment},
	{domain.ReverbMix, fromSentiment},
}

var textureFields = []domain.Param{
	domain.AirGain,
	domain.AttackTime,
	domain.Graininess,
	domain.BodyLayerSustain,
	domain.HarmonicContent,
	domain.FilterResonance,
}

// envelopeFields split evenly between phonetic and sentiment.
var envelopeFields = []domain.Param{
	domain.AttackSharpness,
	domain.ReleaseTime,
}

// fuse combines layer fragments into a full vector. A nil fragment means the
// layer had nothing to say; any missing value reads as neutral.
func fuse(weights Weights, phonetic, semantic, sentiment domain.Fragment) domain.Vector {
	w := weights.Normalized()
	out := domain.NewVector()

	read := func(f domain.Fragment, p domain.Param, use bool) float64 {
		if !use {
			return domain.NeutralValue
		}
		return f.GetOr(p, domain.NeutralValue)
	}

	for _, field := range weightedFields {
		p := field.param
		out.Set(p,
			w.Phonetic*read(phonetic, p, field.sources&fromPhonetic != 0)+
				w.Semantic*read(semantic, p, field.sources&fromSemantic != 0)+
				w.Sentiment*read(sentiment, p, field.sources&fromSentiment != 0))
	}
	for _, p := range textureFields {
		out.Set(p, phonetic.GetOr(p, domain.NeutralValue))
	}
	for _, p := range envelopeFields {
		out.Set(p, 0.5*phonetic.GetOr(p, domain.NeutralValue)+0.5*sentiment.GetOr(p, domain.NeutralValue))
	}
	return out
}

// applyContext pulls params toward accumulated context. The immediate tier is
// params itself; short-term and long-term tiers join only when they hold data for
// the field, and the tier weights are renormalized over those present.
func applyContext(acc *accumulator.Accumulator, params domain.Vector, influence float64) domain.Vector {
	hasShort := acc.Len() > 0
	short := acc.ShortTermAverages()
	long := acc.LongTerm()

	out := params
	for _, p := range domain.BoundedParams() {
		if p == domain.HarmonicDensity {
			if hasShort {
				out.Set(p, params.Get(p)*(1-influence)+acc.HarmonicDensity()*influence)
			}
			continue
		}

		weight := 1 - influence
		sum := params.Get(p) * weight
		if hasShort {
			sum += short.Get(p) * 0.6 * influence
			weight += 0.6 * influence
		}
		if value, ok := long.Get(p); ok {
			sum += value * 0.4 * influence
			weight += 0.4 * influence
		}
		if weight > 0 {
			out.Set(p, sum/weight)
		}
	}
	return out
}

// selectScales keeps the category's own order first and appends the dominant
// historical scale when it is new. Without a category only fallback is returned.
func selectScales(acc *accumulator.Accumulator, categoryScales []string, fallback string) []string {
	if len(categoryScales) == 0 {
		return []string{fallback}
	}

	out := make([]string, 0, maxScales+1)
	out = append(out, categoryScales...)
	if dominant, ok := acc.DominantScale(); ok && !contains(out, dominant) {
		out = append(out, dominant)
	}
	if len(out) > maxScales {
		out = out[:maxScales]
	}
	return out
}

const maxScales = 3

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// smoother holds the previous engine output.
type smoother struct {
	prev    domain.Vector
	hasPrev bool
}

// apply blends bounded fields with the previous output. The first call passes through.
func (s *smoother) apply(params domain.Vector, smoothing float64) domain.Vector {
	if !s.hasPrev {
		s.prev, s.hasPrev = params, true
		return params
	}
	out := params
	for _, p := range domain.BoundedParams() {
		out.Set(p, s.prev.Get(p)*smoothing+params.Get(p)*(1-smoothing))
	}
	s.prev = out
	return out
}
