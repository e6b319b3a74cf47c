package lexicon

import "github.com/basedlsg/PLugg-sub000/internal/domain"

// DefaultScale is used when no category preference applies.
const DefaultScale = "pentatonic"

// Categories returns the default semantic categories in iteration order.
func Categories() []domain.Category {
	return []domain.Category{
		{
			Name:     "water",
			Scales:   []string{"minor", "slendro", "dorian"},
			Base:     domain.BaseParams{Motion: 0.6, Space: 0.7, Complexity: 0.4, Warmth: 0.4},
			Keywords: []string{"ocean", "sea", "river", "rain", "wave", "waves", "water", "tide", "lake", "stream", "flow", "mist", "drop", "deep", "shore"},
		},
		{
			Name:     "fire",
			Scales:   []string{"phrygian", "harmonic minor", "blues"},
			Base:     domain.BaseParams{Motion: 0.8, Space: 0.3, Complexity: 0.7, Warmth: 0.9},
			Keywords: []string{"fire", "flame", "burn", "blaze", "ember", "heat", "spark", "lava", "sun", "passion"},
		},
		{
			Name:     "earth",
			Scales:   []string{"major", "mixolydian", "pentatonic"},
			Base:     domain.BaseParams{Motion: 0.3, Space: 0.4, Complexity: 0.5, Warmth: 0.7},
			Keywords: []string{"earth", "stone", "rock", "mountain", "soil", "root", "forest", "tree", "ground", "deep"},
		},
		{
			Name:     "air",
			Scales:   []string{"lydian", "japanese yo", "whole tone"},
			Base:     domain.BaseParams{Motion: 0.7, Space: 0.8, Complexity: 0.3, Warmth: 0.5},
			Keywords: []string{"air", "wind", "breeze", "sky", "cloud", "breath", "feather", "float", "flight", "mist"},
		},
		{
			Name:     "night",
			Scales:   []string{"aeolian", "locrian", "minor"},
			Base:     domain.BaseParams{Motion: 0.2, Space: 0.9, Complexity: 0.4, Warmth: 0.3},
			Keywords: []string{"night", "dark", "moon", "star", "stars", "shadow", "dream", "sleep", "midnight", "void"},
		},
		{
			Name:     "light",
			Scales:   []string{"major", "lydian", "chinese gong"},
			Base:     domain.BaseParams{Motion: 0.5, Space: 0.6, Complexity: 0.3, Warmth: 0.6},
			Keywords: []string{"light", "bright", "glow", "shine", "dawn", "gold", "crystal", "sun", "radiant", "spark"},
		},
		{
			Name:     "emotion",
			Scales:   []string{"dorian", "celtic", "major"},
			Base:     domain.BaseParams{Motion: 0.5, Space: 0.5, Complexity: 0.6, Warmth: 0.8},
			Keywords: []string{"love", "heart", "joy", "sorrow", "hope", "fear", "longing", "tender", "passion", "tears"},
		},
		{
			Name:     "machine",
			Scales:   []string{"chromatic", "whole tone", "locrian"},
			Base:     domain.BaseParams{Motion: 0.7, Space: 0.3, Complexity: 0.9, Warmth: 0.2},
			Keywords: []string{"machine", "metal", "engine", "circuit", "gear", "steel", "wire", "pulse", "signal", "code"},
		},
	}
}
