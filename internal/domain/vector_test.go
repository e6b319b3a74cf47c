package domain_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/basedlsg/PLugg-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVector_Defaults(t *testing.T) {
	v := domain.NewVector()

	for _, p := range domain.BoundedParams() {
		assert.Equal(t, domain.NeutralValue, v.Get(p), p.String())
	}
	assert.Equal(t, 0.0, v.Get(domain.ScaleIndex))
	assert.Equal(t, 60.0, v.Get(domain.RootNote))
	assert.Equal(t, 4.0, v.Get(domain.Octave))
}

func TestVector_LookupUnknownIsNeutral(t *testing.T) {
	v := domain.VectorOf(domain.Fragment{domain.Space: 0.9})

	assert.Equal(t, 0.9, v.Lookup("space"))
	assert.Equal(t, domain.NeutralValue, v.Lookup("wobble"))
	assert.Equal(t, domain.NeutralValue, v.Get(domain.Param(-1)))
	assert.Equal(t, domain.NeutralValue, v.Get(domain.NumParams))
}

func TestVector_SetClampsBoundedOnly(t *testing.T) {
	v := domain.NewVector()

	v.Set(domain.Warmth, 1.7)
	v.Set(domain.Drift, -0.3)
	v.Set(domain.Motion, math.NaN())
	v.Set(domain.RootNote, 72)
	v.Set(domain.ScaleIndex, 3)
	v.Set(domain.NumParams, 0.1)

	assert.Equal(t, 1.0, v.Get(domain.Warmth))
	assert.Equal(t, 0.0, v.Get(domain.Drift))
	assert.Equal(t, domain.NeutralValue, v.Get(domain.Motion))
	assert.Equal(t, 72.0, v.Get(domain.RootNote))
	assert.Equal(t, 3.0, v.Get(domain.ScaleIndex))

	v.Set(domain.RootNote, math.NaN())
	v.Set(domain.Octave, math.Inf(1))
	v.Set(domain.ScaleIndex, math.Inf(-1))
	assert.Equal(t, 72.0, v.Get(domain.RootNote), "non-finite unbounded values are dropped")
	assert.Equal(t, 4.0, v.Get(domain.Octave))
	assert.Equal(t, 3.0, v.Get(domain.ScaleIndex))
}

func TestVector_WithDoesNotMutate(t *testing.T) {
	base := domain.NewVector()
	next := base.With(domain.Fragment{domain.Tempo: 0.8})

	assert.Equal(t, domain.NeutralValue, base.Get(domain.Tempo))
	assert.Equal(t, 0.8, next.Get(domain.Tempo))
}

func TestVector_JSONUsesParamNames(t *testing.T) {
	v := domain.VectorOf(domain.Fragment{domain.FilterCutoff: 0.25, domain.Octave: 5})

	data, err := json.Marshal(v)
	require.NoError(t, err)

	var raw map[string]float64
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Len(t, raw, int(domain.NumParams))
	assert.Equal(t, 0.25, raw["filterCutoff"])
	assert.Equal(t, 5.0, raw["octave"])

	var back domain.Vector
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, v, back)
}

func TestVector_UnmarshalRejectsUnknownName(t *testing.T) {
	var v domain.Vector
	err := json.Unmarshal([]byte(`{"wobble":0.2}`), &v)
	assert.Error(t, err)
}

func TestMeanVector(t *testing.T) {
	a := domain.VectorOf(domain.Fragment{domain.Space: 0.2, domain.RootNote: 50})
	b := domain.VectorOf(domain.Fragment{domain.Space: 0.6, domain.RootNote: 70})

	mean := domain.MeanVector([]domain.Vector{a, b})

	assert.InDelta(t, 0.4, mean.Get(domain.Space), 1e-9)
	assert.InDelta(t, 60.0, mean.Get(domain.RootNote), 1e-9)
	assert.Equal(t, domain.NewVector(), domain.MeanVector(nil))
}

func TestFragment_GetOrAndClone(t *testing.T) {
	f := domain.Fragment{domain.Brilliance: 0.9}

	assert.Equal(t, 0.9, f.GetOr(domain.Brilliance, 0))
	assert.Equal(t, 0.1, f.GetOr(domain.Warmth, 0.1))

	c := f.Clone()
	c[domain.Brilliance] = 0.1
	assert.Equal(t, 0.9, f[domain.Brilliance])
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{0.3, 0.3},
		{2, 1},
		{math.Inf(1), 1},
		{math.NaN(), domain.NeutralValue},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.Clamp01(tt.in))
	}
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"the", "ocean", "roars"}, domain.Tokenize("  The OCEAN, roars!! 42 "))
	assert.Empty(t, domain.Tokenize("   ... 12 "))
	assert.Equal(t, "thunder", domain.NormalizeWord("Thunder!"))
}

func TestParamByName(t *testing.T) {
	for _, p := range domain.AllParams() {
		got, ok := domain.ParamByName(p.String())
		require.True(t, ok, p.String())
		assert.Equal(t, p, got)
	}
	_, ok := domain.ParamByName("wobble")
	assert.False(t, ok)
	assert.Equal(t, "unknown", domain.NumParams.String())
}
