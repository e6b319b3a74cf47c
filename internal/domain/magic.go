package domain

// VisualHints are authored rendering suggestions attached to a magic word.
type VisualHints struct {
	Palette   []string `json:"palette,omitempty"`
	Pattern   string   `json:"pattern,omitempty"`
	Intensity float64  `json:"intensity"`
}

// MagicWord is a curated input whose output is hand-authored.
type MagicWord struct {
	Description    string
	Category       string
	Scales         []string
	Parameters     Vector
	Visual         VisualHints
	IsApexWord     bool
	TriggerAIImage bool
}
