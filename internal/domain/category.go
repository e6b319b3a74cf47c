package domain

// BaseParams is the parameter fragment a semantic category contributes.
type BaseParams struct {
	Motion     float64 `json:"motion"`
	Space      float64 `json:"space"`
	Complexity float64 `json:"complexity"`
	Warmth     float64 `json:"warmth"`
}

// NeutralBase has every field at NeutralValue.
var NeutralBase = BaseParams{Motion: NeutralValue, Space: NeutralValue, Complexity: NeutralValue, Warmth: NeutralValue}

func (b BaseParams) Fragment() Fragment {
	return Fragment{
		Motion:     b.Motion,
		Space:      b.Space,
		Complexity: b.Complexity,
		Warmth:     b.Warmth,
	}
}

// Category groups keywords that share preferred scales and base parameters.
// A keyword may belong to several categories.
type Category struct {
	Name     string
	Scales   []string
	Base     BaseParams
	Keywords []string
}
