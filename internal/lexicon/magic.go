package lexicon

import "github.com/basedlsg/PLugg-sub000/internal/domain"

// MagicWords returns the curated magic-word registry keyed by normalized word.
func MagicWords() map[string]domain.MagicWord {
	return map[string]domain.MagicWord{
		"thunder": {
			Description: "A rolling storm front: sharp attack, wide space, heavy body",
			Category:    "storm",
			Scales:      []string{"phrygian", "minor", "locrian"},
			Parameters: domain.VectorOf(domain.Fragment{
				domain.Brilliance:       0.35,
				domain.Motion:           0.9,
				domain.Space:            0.95,
				domain.Warmth:           0.3,
				domain.Drift:            0.6,
				domain.AirGain:          0.4,
				domain.AttackSharpness:  0.95,
				domain.AttackTime:       0.05,
				domain.Graininess:       0.8,
				domain.FilterResonance:  0.6,
				domain.FilterCutoff:     0.45,
				domain.BodyLayerSustain: 0.9,
				domain.ReleaseTime:      0.85,
				domain.HarmonicContent:  0.7,
				domain.HarmonicDensity:  0.85,
				domain.Complexity:       0.8,
				domain.Tempo:            0.75,
				domain.DriftSpeed:       0.4,
				domain.ReverbMix:        0.8,
				domain.ScaleIndex:       2,
				domain.RootNote:         36,
				domain.Octave:           2,
			}),
			Visual:         domain.VisualHints{Palette: []string{"#1b1f3b", "#e8e8ff", "#5a5f8c"}, Pattern: "lightning", Intensity: 1},
			IsApexWord:     true,
			TriggerAIImage: true,
		},
		"aurora": {
			Description: "Slow shimmering curtains of high harmonics",
			Category:    "light",
			Scales:      []string{"lydian", "japanese yo"},
			Parameters: domain.VectorOf(domain.Fragment{
				domain.Brilliance:      0.9,
				domain.Motion:          0.35,
				domain.Space:           0.9,
				domain.Warmth:          0.45,
				domain.Drift:           0.8,
				domain.AirGain:         0.75,
				domain.AttackSharpness: 0.15,
				domain.AttackTime:      0.8,
				domain.HarmonicContent: 0.85,
				domain.HarmonicDensity: 0.6,
				domain.Tempo:           0.3,
				domain.DriftSpeed:      0.2,
				domain.ReverbMix:       0.9,
				domain.ScaleIndex:      8,
				domain.Octave:          5,
			}),
			Visual:         domain.VisualHints{Palette: []string{"#00ff99", "#7a00ff", "#001133"}, Pattern: "curtain", Intensity: 0.7},
			TriggerAIImage: true,
		},
		"silence": {
			Description: "Near stillness: almost no motion, long release",
			Category:    "night",
			Scales:      []string{"pentatonic"},
			Parameters: domain.VectorOf(domain.Fragment{
				domain.Brilliance:       0.1,
				domain.Motion:           0.05,
				domain.Space:            1,
				domain.Warmth:           0.5,
				domain.AirGain:          0.2,
				domain.AttackSharpness:  0.05,
				domain.AttackTime:       1,
				domain.BodyLayerSustain: 0.2,
				domain.ReleaseTime:      1,
				domain.HarmonicDensity:  0.1,
				domain.Complexity:       0.05,
				domain.Tempo:            0.1,
				domain.ReverbMix:        0.95,
			}),
			Visual: domain.VisualHints{Palette: []string{"#000000", "#111111"}, Pattern: "void", Intensity: 0.1},
		},
	}
}
