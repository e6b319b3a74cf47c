package domain

// WordMatch is the semantic reading of a single known word.
type WordMatch struct {
	Category string     `json:"category"`
	Scales   []string   `json:"scales"`
	Base     BaseParams `json:"base"`
}

// Direction describes how a sentiment dimension moved across recent history.
type Direction string

const (
	DirectionRising  Direction = "rising"
	DirectionFalling Direction = "falling"
	DirectionStable  Direction = "stable"
)

// SentimentTrend summarizes recent sentiment history.
type SentimentTrend struct {
	Valence      Direction `json:"valence"`
	Arousal      Direction `json:"arousal"`
	ValenceDelta float64   `json:"valenceDelta"`
	ArousalDelta float64   `json:"arousalDelta"`
	Stability    float64   `json:"stability"`
}

// ContextSnapshot is a read-only view of accumulated context.
type ContextSnapshot struct {
	ImmediateWord    string         `json:"immediateWord,omitempty"`
	ShortTermWords   []string       `json:"shortTermWords"`
	LongTerm         Fragment       `json:"-"`
	DominantCategory string         `json:"dominantCategory,omitempty"`
	DominantScale    string         `json:"dominantScale,omitempty"`
	HarmonicDensity  float64        `json:"harmonicDensity"`
	Trend            SentimentTrend `json:"trend"`
}

// Layers holds the raw output of each analysis layer.
type Layers struct {
	Phonetic  Fragment        `json:"-"`
	Semantic  *WordMatch      `json:"semantic,omitempty"`
	Sentiment SentimentSample `json:"sentiment"`
}

// FusionResult is the outcome of processing one word or phrase.
type FusionResult struct {
	Input  string `json:"input"`
	Layers Layers `json:"layers"`
	// Fused is the layer blend before context influence and smoothing.
	Fused      Vector          `json:"fused"`
	Parameters Vector          `json:"parameters"`
	Scales     []string        `json:"scales"`
	Category   string          `json:"category,omitempty"`
	Context    ContextSnapshot `json:"context"`

	IsMagicWord      bool        `json:"isMagicWord"`
	MagicDescription string      `json:"magicDescription,omitempty"`
	IsApexWord       bool        `json:"isApexWord"`
	TriggerAIImage   bool        `json:"triggerAiImage"`
	Visual           VisualHints `json:"visual"`
}

// PhoneticAnalyzer derives texture parameters from a word's letters and phonemes.
// Implementations return a partial vector over airGain, attackSharpness, attackTime,
// graininess, brilliance, filterResonance, harmonicContent, bodyLayerSustain and releaseTime.
type PhoneticAnalyzer interface {
	Analyze(word string) Fragment
}
