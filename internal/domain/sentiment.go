package domain

// SentimentSample is the valence/arousal reading of a piece of text.
type SentimentSample struct {
	Valence  float64 `json:"valence"`
	Arousal  float64 `json:"arousal"`
	Coverage float64 `json:"coverage"`
	Matched  int     `json:"matched"`
	Total    int     `json:"total"`
}

// NeutralSentiment is the reading for text without sentiment-bearing tokens.
var NeutralSentiment = SentimentSample{Valence: NeutralValue, Arousal: NeutralValue}

// ValenceTiers lists words by how strongly they read as positive or negative.
type ValenceTiers struct {
	StrongPositive   []string
	ModeratePositive []string
	MildPositive     []string
	MildNegative     []string
	ModerateNegative []string
	StrongNegative   []string
}

// ArousalTiers lists words by how energizing or calming they read.
type ArousalTiers struct {
	StrongHigh   []string
	ModerateHigh []string
	ModerateLow  []string
	StrongLow    []string
}

// SentimentLexicon is the dictionary shape consumed by the sentiment scorer.
type SentimentLexicon struct {
	Valence     ValenceTiers
	Arousal     ArousalTiers
	Amplifiers  []string
	Diminishers []string
	Negators    []string
}
