package domain

// Param identifies one control value in a Vector.
type Param int

const (
	Brilliance Param = iota
	Motion
	Space
	Warmth
	Drift
	AirGain
	AttackSharpness
	AttackTime
	Graininess
	FilterResonance
	FilterCutoff
	BodyLayerSustain
	ReleaseTime
	HarmonicContent
	HarmonicDensity
	Complexity
	Tempo
	DriftSpeed
	ReverbMix

	// Unconstrained fields, never clamped.
	ScaleIndex
	RootNote
	Octave

	NumParams
)

// NeutralValue is returned for any parameter that has no signal.
const NeutralValue = 0.5

var paramNames = [NumParams]string{
	Brilliance:       "brilliance",
	Motion:           "motion",
	Space:            "space",
	Warmth:           "warmth",
	Drift:            "drift",
	AirGain:          "airGain",
	AttackSharpness:  "attackSharpness",
	AttackTime:       "attackTime",
	Graininess:       "graininess",
	FilterResonance:  "filterResonance",
	FilterCutoff:     "filterCutoff",
	BodyLayerSustain: "bodyLayerSustain",
	ReleaseTime:      "releaseTime",
	HarmonicContent:  "harmonicContent",
	HarmonicDensity:  "harmonicDensity",
	Complexity:       "complexity",
	Tempo:            "tempo",
	DriftSpeed:       "driftSpeed",
	ReverbMix:        "reverbMix",
	ScaleIndex:       "scaleIndex",
	RootNote:         "rootNote",
	Octave:           "octave",
}

var paramsByName = func() map[string]Param {
	m := make(map[string]Param, NumParams)
	for p := Param(0); p < NumParams; p++ {
		m[paramNames[p]] = p
	}
	return m
}()

func (p Param) String() string {
	if !p.Valid() {
		return "unknown"
	}
	return paramNames[p]
}

// Valid reports whether p is a declared parameter.
func (p Param) Valid() bool {
	return p >= 0 && p < NumParams
}

// Bounded reports whether p is clamped to [0,1].
func (p Param) Bounded() bool {
	return p.Valid() && p < ScaleIndex
}

// Default returns the neutral starting value for p.
func (p Param) Default() float64 {
	switch p {
	case ScaleIndex:
		return 0
	case RootNote:
		return 60
	case Octave:
		return 4
	default:
		return NeutralValue
	}
}

// ParamByName resolves a parameter name like "filterCutoff".
func ParamByName(name string) (Param, bool) {
	p, ok := paramsByName[name]
	return p, ok
}

// AllParams returns every declared parameter in declaration order.
func AllParams() []Param {
	out := make([]Param, NumParams)
	for i := range out {
		out[i] = Param(i)
	}
	return out
}

// BoundedParams returns every parameter clamped to [0,1].
func BoundedParams() []Param {
	return AllParams()[:ScaleIndex]
}
