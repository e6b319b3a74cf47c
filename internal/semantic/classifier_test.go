package semantic

import (
	"testing"

	"github.com/basedlsg/PLugg-sub000/internal/domain"
	"github.com/basedlsg/PLugg-sub000/internal/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCategories() []domain.Category {
	return []domain.Category{
		{
			Name:     "water",
			Scales:   []string{"minor", "slendro", "dorian"},
			Base:     domain.BaseParams{Motion: 0.6, Space: 0.8, Complexity: 0.4, Warmth: 0.2},
			Keywords: []string{"ocean", "rain", "mist"},
		},
		{
			Name:     "air",
			Scales:   []string{"lydian", "minor"},
			Base:     domain.BaseParams{Motion: 1.0, Space: 0.4, Complexity: 0.2, Warmth: 0.6},
			Keywords: []string{"wind", "mist"},
		},
		{
			Name:     "fire",
			Scales:   []string{"phrygian"},
			Base:     domain.BaseParams{Motion: 0.9, Space: 0.1, Complexity: 0.9, Warmth: 1.0},
			Keywords: []string{"flame"},
		},
	}
}

func TestAnalyzeSemantics_CountsAndUnmatched(t *testing.T) {
	c := New(testCategories(), "")

	a := c.AnalyzeSemantics("Ocean, mist & the WIND!")

	assert.Equal(t, 4, a.TotalWords)
	assert.Equal(t, 4, a.TotalMatches, "mist matches two categories")
	assert.Equal(t, 2, a.Count("water"))
	assert.Equal(t, 2, a.Count("air"))
	assert.Equal(t, 0, a.Count("fire"))
	assert.Equal(t, []string{"the"}, a.Unmatched)
	require.Len(t, a.Matches, 2)
	assert.Equal(t, []string{"ocean", "mist"}, a.Matches[0].Words)
}

func TestAnalyzeSemantics_StripsNonLetterTokens(t *testing.T) {
	c := New(testCategories(), "")

	a := c.AnalyzeSemantics("  42 ... rain  ")

	assert.Equal(t, 1, a.TotalWords)
	assert.Equal(t, 1, a.Count("water"))
}

func TestDominantCategory(t *testing.T) {
	c := New(testCategories(), "")

	d := c.DominantCategory("ocean rain wind stone")

	assert.Equal(t, "water", d.Category.Name)
	assert.Equal(t, 2, d.Matches)
	assert.InDelta(t, 0.5, d.Confidence, 1e-9)
}

func TestDominantCategory_TieGoesToFirstCategory(t *testing.T) {
	c := New(testCategories(), "")

	d := c.DominantCategory("wind flame")

	assert.Equal(t, "air", d.Category.Name)
}

func TestDominantCategory_NoMatchesIsNeutral(t *testing.T) {
	c := New(testCategories(), "major")

	for _, text := range []string{"", "   ", "unknown words only"} {
		d := c.DominantCategory(text)
		assert.Equal(t, NeutralCategory, d.Category.Name)
		assert.Equal(t, []string{"major"}, d.Category.Scales)
		assert.Equal(t, domain.NeutralBase, d.Category.Base)
		assert.Zero(t, d.Confidence)
	}
}

func TestBlendedParameters_WeightsAllMatchedCategories(t *testing.T) {
	c := New(testCategories(), "")

	// water: ocean, mist (2); air: mist (1) -> weights 2/3, 1/3
	b := c.BlendedParameters("ocean mist")

	assert.InDelta(t, 2.0/3, b.Weights["water"], 1e-9)
	assert.InDelta(t, 1.0/3, b.Weights["air"], 1e-9)
	assert.InDelta(t, 0.6*2/3+1.0/3, b.Base.Motion, 1e-9)
	assert.InDelta(t, 0.8*2/3+0.4/3, b.Base.Space, 1e-9)
	assert.InDelta(t, 0.4*2/3+0.2/3, b.Base.Complexity, 1e-9)
	assert.InDelta(t, 0.2*2/3+0.6/3, b.Base.Warmth, 1e-9)

	// minor accumulates from both categories and ranks first.
	assert.Equal(t, []string{"minor", "slendro", "dorian"}, b.Scales)
}

func TestBlendedParameters_TopThreeStableOnTies(t *testing.T) {
	c := New(testCategories(), "")

	// water and air share weight 0.5 each: minor=1.0, then slendro, dorian, lydian at 0.5.
	b := c.BlendedParameters("ocean wind")

	assert.Equal(t, []string{"minor", "slendro", "dorian"}, b.Scales)
}

func TestBlendedParameters_NoMatches(t *testing.T) {
	c := New(testCategories(), "")

	b := c.BlendedParameters("nothing here")

	assert.Equal(t, domain.NeutralBase, b.Base)
	assert.Equal(t, []string{"pentatonic"}, b.Scales)
	assert.Empty(t, b.Weights)
}

func TestLookupWord(t *testing.T) {
	c := New(testCategories(), "")

	m := c.LookupWord("Mist")
	require.NotNil(t, m)
	assert.Equal(t, "water", m.Category, "first matching category wins")
	assert.Equal(t, []string{"minor", "slendro", "dorian"}, m.Scales)

	assert.Nil(t, c.LookupWord("stone"))
	assert.Nil(t, c.LookupWord(""))
	assert.Nil(t, c.LookupWord("ocean rain"), "lookup is single-token exact")
}

func TestLookupWord_ReturnsCopyOfScales(t *testing.T) {
	c := New(testCategories(), "")

	m := c.LookupWord("ocean")
	m.Scales[0] = "mutated"

	assert.Equal(t, "minor", c.LookupWord("ocean").Scales[0])
}

func TestDominantCategory_ReturnsCopy(t *testing.T) {
	c := New(testCategories(), "")

	d := c.DominantCategory("ocean")
	d.Category.Scales[0] = "mutated"
	d.Category.Keywords[0] = "mutated"

	assert.Equal(t, []string{"minor", "slendro", "dorian"}, c.LookupWord("ocean").Scales)
	assert.Equal(t, "water", c.DominantCategory("ocean").Category.Name)
}

func TestNew_CopiesCallerDictionary(t *testing.T) {
	cats := testCategories()
	c := New(cats, "")

	cats[0].Scales[0] = "mutated"

	assert.Equal(t, "minor", c.LookupWord("ocean").Scales[0])
}

func TestDuplicateCategoryNamesResolveByPosition(t *testing.T) {
	c := New([]domain.Category{
		{Name: "sky", Scales: []string{"lydian"}, Base: domain.BaseParams{Motion: 0.1}, Keywords: []string{"cloud"}},
		{Name: "sky", Scales: []string{"phrygian"}, Base: domain.BaseParams{Motion: 0.9}, Keywords: []string{"storm"}},
	}, "")

	d := c.DominantCategory("storm")
	assert.Equal(t, []string{"phrygian"}, d.Category.Scales)
	assert.Equal(t, 0.9, d.Category.Base.Motion)

	b := c.BlendedParameters("cloud storm")
	assert.InDelta(t, 0.5, b.Base.Motion, 1e-9)
	assert.InDelta(t, 1.0, b.Weights["sky"], 1e-9)
	assert.Equal(t, []string{"lydian", "phrygian"}, b.Scales)
}

func TestDefaultDictionary_Ocean(t *testing.T) {
	c := New(lexicon.Categories(), lexicon.DefaultScale)

	m := c.LookupWord("ocean")
	require.NotNil(t, m)
	assert.Equal(t, "water", m.Category)
	assert.Equal(t, []string{"minor", "slendro", "dorian"}, m.Scales)
}
