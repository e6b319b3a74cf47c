package sentiment

import (
	"github.com/basedlsg/PLugg-sub000/internal/domain"
)

// Tier values are offsets from neutral 0.5.
const (
	strongValence   = 0.4
	moderateValence = 0.25
	mildValence     = 0.1

	strongArousal   = 0.4
	moderateArousal = 0.2

	amplifierFactor  = 1.5
	diminisherFactor = 0.5
)

type modifier int

const (
	modNone modifier = iota
	modAmplify
	modDiminish
	modNegate
)

type Scorer struct {
	valence   map[string]float64
	arousal   map[string]float64
	modifiers map[string]modifier
}

// New indexes lex. When a word appears in several tiers of one dimension the
// stronger tier wins.
func New(lex domain.SentimentLexicon) *Scorer {
	s := &Scorer{
		valence:   make(map[string]float64),
		arousal:   make(map[string]float64),
		modifiers: make(map[string]modifier),
	}

	addTier(s.valence, lex.Valence.StrongPositive, domain.NeutralValue+strongValence)
	addTier(s.valence, lex.Valence.StrongNegative, domain.NeutralValue-strongValence)
	addTier(s.valence, lex.Valence.ModeratePositive, domain.NeutralValue+moderateValence)
	addTier(s.valence, lex.Valence.ModerateNegative, domain.NeutralValue-moderateValence)
	addTier(s.valence, lex.Valence.MildPositive, domain.NeutralValue+mildValence)
	addTier(s.valence, lex.Valence.MildNegative, domain.NeutralValue-mildValence)

	addTier(s.arousal, lex.Arousal.StrongHigh, domain.NeutralValue+strongArousal)
	addTier(s.arousal, lex.Arousal.StrongLow, domain.NeutralValue-strongArousal)
	addTier(s.arousal, lex.Arousal.ModerateHigh, domain.NeutralValue+moderateArousal)
	addTier(s.arousal, lex.Arousal.ModerateLow, domain.NeutralValue-moderateArousal)

	for _, w := range lex.Negators {
		addModifier(s.modifiers, w, modNegate)
	}
	for _, w := range lex.Amplifiers {
		addModifier(s.modifiers, w, modAmplify)
	}
	for _, w := range lex.Diminishers {
		addModifier(s.modifiers, w, modDiminish)
	}
	return s
}

func addTier(into map[string]float64, words []string, value float64) {
	for _, w := range words {
		w = domain.NormalizeWord(w)
		if _, exists := into[w]; w != "" && !exists {
			into[w] = value
		}
	}
}

func addModifier(into map[string]modifier, w string, m modifier) {
	w = domain.NormalizeWord(w)
	if _, exists := into[w]; w != "" && !exists {
		into[w] = m
	}
}

type pending struct {
	factor float64
	negate bool
}

func (p pending) apply(valence, arousal float64) (float64, float64) {
	valence = domain.Clamp01(domain.NeutralValue + (valence-domain.NeutralValue)*p.factor)
	arousal = domain.Clamp01(domain.NeutralValue + (arousal-domain.NeutralValue)*p.factor)
	if p.negate {
		valence = 1 - valence
	}
	return valence, arousal
}

var noPending = pending{factor: 1}

// AnalyzeSentiment scans text left to right. A pending modifier or negator applies to
// the next sentiment-bearing token only; any other token in between clears it.
// Valence and arousal are averaged over the tokens that carry each dimension; a
// dimension with no carriers reads 0.5.
func (s *Scorer) AnalyzeSentiment(text string) domain.SentimentSample {
	tokens := domain.Tokenize(text)
	sample := domain.SentimentSample{Total: len(tokens)}

	var valenceSum, arousalSum float64
	var valenceN, arousalN int
	state := noPending

	for _, tok := range tokens {
		if m, ok := s.modifiers[tok]; ok {
			switch m {
			case modAmplify:
				state.factor = amplifierFactor
			case modDiminish:
				state.factor = diminisherFactor
			case modNegate:
				state.negate = true
			}
			continue
		}

		v, hasValence := s.valence[tok]
		a, hasArousal := s.arousal[tok]
		if !hasValence && !hasArousal {
			state = noPending
			continue
		}
		if !hasValence {
			v = domain.NeutralValue
		}
		if !hasArousal {
			a = domain.NeutralValue
		}

		v, a = state.apply(v, a)
		if hasValence {
			valenceSum += v
			valenceN++
		}
		if hasArousal {
			arousalSum += a
			arousalN++
		}
		sample.Matched++
		state = noPending
	}

	sample.Valence = domain.NeutralValue
	if valenceN > 0 {
		sample.Valence = valenceSum / float64(valenceN)
	}
	sample.Arousal = domain.NeutralValue
	if arousalN > 0 {
		sample.Arousal = arousalSum / float64(arousalN)
	}
	if sample.Total > 0 {
		sample.Coverage = float64(sample.Matched) / float64(2*sample.Total)
	}
	return sample
}

// MapToSynthParams converts a sentiment reading into synthesis parameters.
func MapToSynthParams(s domain.SentimentSample) domain.Fragment {
	v, a := s.Valence, s.Arousal
	f := domain.Fragment{
		domain.Brilliance:      0.3 + 0.5*v,
		domain.Motion:          0.2 + 0.3*v + 0.3*a,
		domain.Space:           0.2 + 0.4*(1-v) + 0.2*(1-a),
		domain.Tempo:           0.5 + 0.6*(a-0.5),
		domain.AttackSharpness: 0.3 + 0.5*a,
		domain.ReleaseTime:     0.1 + 0.8*(1-a),
		domain.DriftSpeed:      0.1 + 0.3*(1-a),
		domain.HarmonicDensity: 0.3 + 0.2*v + 0.2*a,
		domain.FilterCutoff:    0.3 + 0.4*v + 0.2*a,
		domain.ReverbMix:       0.2 + 0.3*(1-v),
	}
	for p, value := range f {
		f[p] = domain.Clamp01(value)
	}
	return f
}
