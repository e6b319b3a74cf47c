package domain

import (
	"encoding/json"
	"fmt"
	"math"
)

// Vector is the full set of control values. Every declared parameter is
// always present; bounded parameters stay within [0,1].
type Vector struct {
	values [NumParams]float64
}

// NewVector returns a vector holding every parameter's default.
func NewVector() Vector {
	var v Vector
	for p := Param(0); p < NumParams; p++ {
		v.values[p] = p.Default()
	}
	return v
}

// VectorOf returns the default vector overlaid with f.
func VectorOf(f Fragment) Vector {
	return NewVector().With(f)
}

// Get returns the value of p, or NeutralValue if p is not declared.
func (v Vector) Get(p Param) float64 {
	if !p.Valid() {
		return NeutralValue
	}
	return v.values[p]
}

// Lookup returns the value for a parameter name. Undeclared names yield NeutralValue.
func (v Vector) Lookup(name string) float64 {
	p, ok := ParamByName(name)
	if !ok {
		return NeutralValue
	}
	return v.values[p]
}

// Set assigns p, clamping bounded parameters. Undeclared parameters are ignored,
// and so are non-finite values on unbounded parameters.
func (v *Vector) Set(p Param, value float64) {
	if !p.Valid() {
		return
	}
	if p.Bounded() {
		value = Clamp01(value)
	} else if math.IsNaN(value) || math.IsInf(value, 0) {
		return
	}
	v.values[p] = value
}

// With returns a copy of v with every entry of f applied.
func (v Vector) With(f Fragment) Vector {
	for p, value := range f {
		v.Set(p, value)
	}
	return v
}

// Fragment returns every parameter of v as a fragment.
func (v Vector) Fragment() Fragment {
	f := make(Fragment, NumParams)
	for p := Param(0); p < NumParams; p++ {
		f[p] = v.values[p]
	}
	return f
}

// Map returns the vector keyed by parameter name.
func (v Vector) Map() map[string]float64 {
	m := make(map[string]float64, NumParams)
	for p := Param(0); p < NumParams; p++ {
		m[paramNames[p]] = v.values[p]
	}
	return m
}

func (v Vector) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Map())
}

func (v *Vector) UnmarshalJSON(data []byte) error {
	var m map[string]float64
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	f, err := FragmentFromNames(m)
	if err != nil {
		return err
	}
	*v = VectorOf(f)
	return nil
}

// MeanVector returns the per-parameter arithmetic mean. An empty slice yields NewVector().
func MeanVector(vs []Vector) Vector {
	if len(vs) == 0 {
		return NewVector()
	}
	var out Vector
	for p := Param(0); p < NumParams; p++ {
		sum := 0.0
		for _, v := range vs {
			sum += v.values[p]
		}
		out.Set(p, sum/float64(len(vs)))
	}
	return out
}

// Fragment is a partial vector produced by one analysis layer or used as a partial target.
type Fragment map[Param]float64

// Get returns the value for p and whether the fragment carries it.
func (f Fragment) Get(p Param) (float64, bool) {
	value, ok := f[p]
	return value, ok
}

// GetOr returns the value for p, or fallback when absent.
func (f Fragment) GetOr(p Param, fallback float64) float64 {
	if value, ok := f[p]; ok {
		return value
	}
	return fallback
}

func (f Fragment) Clone() Fragment {
	out := make(Fragment, len(f))
	for p, value := range f {
		out[p] = value
	}
	return out
}

// FragmentFromNames converts a name-keyed map into a fragment.
func FragmentFromNames(m map[string]float64) (Fragment, error) {
	f := make(Fragment, len(m))
	for name, value := range m {
		p, ok := ParamByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown parameter %q", name)
		}
		f[p] = value
	}
	return f, nil
}

// Clamp01 limits x to [0,1]. NaN collapses to NeutralValue.
func Clamp01(x float64) float64 {
	if math.IsNaN(x) {
		return NeutralValue
	}
	return math.Max(0, math.Min(1, x))
}
