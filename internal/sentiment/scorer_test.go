package sentiment

import (
	"testing"

	"github.com/basedlsg/PLugg-sub000/internal/domain"
	"github.com/basedlsg/PLugg-sub000/internal/lexicon"
	"github.com/stretchr/testify/assert"
)

func testLexicon() domain.SentimentLexicon {
	return domain.SentimentLexicon{
		Valence: domain.ValenceTiers{
			StrongPositive:   []string{"ecstasy"},
			ModeratePositive: []string{"happy"},
			MildPositive:     []string{"calm"},
			ModerateNegative: []string{"sad"},
		},
		Arousal: domain.ArousalTiers{
			StrongHigh:  []string{"storm", "ecstasy"},
			ModerateLow: []string{"calm"},
		},
		Amplifiers:  []string{"very"},
		Diminishers: []string{"slightly"},
		Negators:    []string{"not"},
	}
}

func TestAnalyzeSentiment(t *testing.T) {
	s := New(testLexicon())

	tests := []struct {
		name        string
		text        string
		wantValence float64
		wantArousal float64
		wantMatched int
	}{
		{"plain positive", "happy", 0.75, 0.5, 1},
		{"amplifier", "very happy", 0.875, 0.5, 1},
		{"diminisher", "slightly sad", 0.375, 0.5, 1},
		{"negator reflects valence", "not happy", 0.25, 0.5, 1},
		{"negator with amplifier", "not very happy", 0.125, 0.5, 1},
		{"intervening token clears negation", "not the happy", 0.75, 0.5, 1},
		{"intervening token clears amplifier", "very much happy", 0.75, 0.5, 1},
		{"negation consumed by first sentiment token", "not sad happy", 0.75, 0.5, 2},
		{"both dimensions", "calm", 0.6, 0.3, 1},
		{"arousal only keeps neutral valence", "storm", 0.5, 0.9, 1},
		{"amplified value is clamped", "very ecstasy", 1.0, 1.0, 1},
		{"mean over matched tokens", "happy sad", 0.5, 0.5, 2},
		{"case and punctuation", "Very, HAPPY!", 0.875, 0.5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.AnalyzeSentiment(tt.text)
			assert.InDelta(t, tt.wantValence, got.Valence, 1e-9)
			assert.InDelta(t, tt.wantArousal, got.Arousal, 1e-9)
			assert.Equal(t, tt.wantMatched, got.Matched)
		})
	}
}

func TestAnalyzeSentiment_Coverage(t *testing.T) {
	s := New(testLexicon())

	got := s.AnalyzeSentiment("happy little day")

	assert.Equal(t, 3, got.Total)
	assert.InDelta(t, 1.0/6, got.Coverage, 1e-9)
}

func TestAnalyzeSentiment_EmptyAndUnknown(t *testing.T) {
	s := New(testLexicon())

	for _, text := range []string{"", "   ", "table chair"} {
		got := s.AnalyzeSentiment(text)
		assert.Equal(t, domain.NeutralValue, got.Valence)
		assert.Equal(t, domain.NeutralValue, got.Arousal)
		assert.Zero(t, got.Coverage)
		assert.Zero(t, got.Matched)
	}
}

func TestMapToSynthParams_Neutral(t *testing.T) {
	f := MapToSynthParams(domain.NeutralSentiment)

	want := map[domain.Param]float64{
		domain.Brilliance:      0.55,
		domain.Motion:          0.5,
		domain.Space:           0.5,
		domain.Tempo:           0.5,
		domain.AttackSharpness: 0.55,
		domain.ReleaseTime:     0.5,
		domain.DriftSpeed:      0.25,
		domain.HarmonicDensity: 0.5,
		domain.FilterCutoff:    0.6,
		domain.ReverbMix:       0.35,
	}
	assert.Len(t, f, len(want))
	for p, v := range want {
		assert.InDelta(t, v, f[p], 1e-9, p.String())
	}
}

func TestMapToSynthParams_Extremes(t *testing.T) {
	f := MapToSynthParams(domain.SentimentSample{Valence: 1, Arousal: 1})

	assert.InDelta(t, 0.8, f[domain.Brilliance], 1e-9)
	assert.InDelta(t, 0.8, f[domain.Motion], 1e-9)
	assert.InDelta(t, 0.2, f[domain.Space], 1e-9)
	assert.InDelta(t, 0.8, f[domain.Tempo], 1e-9)
	assert.InDelta(t, 0.8, f[domain.AttackSharpness], 1e-9)
	assert.InDelta(t, 0.1, f[domain.ReleaseTime], 1e-9)
	assert.InDelta(t, 0.1, f[domain.DriftSpeed], 1e-9)
	assert.InDelta(t, 0.7, f[domain.HarmonicDensity], 1e-9)
	assert.InDelta(t, 0.9, f[domain.FilterCutoff], 1e-9)
	assert.InDelta(t, 0.2, f[domain.ReverbMix], 1e-9)
}

func TestDefaultLexicon_StrongerTierWins(t *testing.T) {
	// "joy" is strong positive and moderate-high arousal in the default lexicon.
	s := New(lexicon.Sentiment())

	got := s.AnalyzeSentiment("joy")

	assert.InDelta(t, 0.9, got.Valence, 1e-9)
	assert.InDelta(t, 0.7, got.Arousal, 1e-9)
}
