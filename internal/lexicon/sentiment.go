package lexicon

import "github.com/basedlsg/PLugg-sub000/internal/domain"

// Sentiment returns the default sentiment lexicon.
func Sentiment() domain.SentimentLexicon {
	return domain.SentimentLexicon{
		Valence: domain.ValenceTiers{
			StrongPositive:   []string{"love", "joy", "ecstasy", "bliss", "wonderful", "radiant", "triumph", "glorious"},
			ModeratePositive: []string{"happy", "hope", "bright", "warm", "beautiful", "peace", "gentle", "sweet"},
			MildPositive:     []string{"calm", "soft", "nice", "okay", "light", "easy", "fine"},
			MildNegative:     []string{"cold", "gray", "tired", "dull", "empty", "strange"},
			ModerateNegative: []string{"sad", "fear", "lonely", "dark", "sorrow", "broken", "lost"},
			StrongNegative:   []string{"hate", "despair", "agony", "terror", "misery", "dread", "grief"},
		},
		Arousal: domain.ArousalTiers{
			StrongHigh:   []string{"ecstasy", "terror", "rage", "explode", "storm", "frantic", "thunder", "scream"},
			ModerateHigh: []string{"joy", "excited", "fire", "dance", "run", "fear", "wild", "spark"},
			ModerateLow:  []string{"calm", "soft", "gentle", "slow", "quiet", "tired", "peace"},
			StrongLow:    []string{"sleep", "still", "silence", "serene", "dormant", "numb"},
		},
		Amplifiers:  []string{"very", "so", "extremely", "really", "incredibly", "deeply", "utterly"},
		Diminishers: []string{"slightly", "somewhat", "barely", "little", "kinda", "mildly"},
		Negators:    []string{"not", "no", "never", "without", "nothing", "isnt", "dont"},
	}
}
