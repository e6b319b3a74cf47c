package semantic

import (
	"sort"

	"github.com/basedlsg/PLugg-sub000/internal/domain"
)

const (
	// NeutralCategory names the fallback returned when nothing matches.
	NeutralCategory = "neutral"

	fallbackScale = "pentatonic"
	maxScales     = 3
)

type Classifier struct {
	categories   []domain.Category
	index        map[string][]int
	defaultScale string
}

// New indexes categories. Category order is the iteration order used for tie-breaking.
// An empty defaultScale falls back to "pentatonic".
func New(categories []domain.Category, defaultScale string) *Classifier {
	if defaultScale == "" {
		defaultScale = fallbackScale
	}
	c := &Classifier{
		categories:   make([]domain.Category, len(categories)),
		index:        make(map[string][]int),
		defaultScale: defaultScale,
	}
	for i, cat := range categories {
		c.categories[i] = cloneCategory(cat)
	}

	for i, cat := range c.categories {
		seen := make(map[string]bool, len(cat.Keywords))
		for _, kw := range cat.Keywords {
			w := domain.NormalizeWord(kw)
			if w == "" || seen[w] {
				continue
			}
			seen[w] = true
			c.index[w] = append(c.index[w], i)
		}
	}
	return c
}

// DefaultScale returns the scale used when no category applies.
func (c *Classifier) DefaultScale() string {
	return c.defaultScale
}

// Categories returns the category names in iteration order.
func (c *Classifier) Categories() []string {
	names := make([]string, len(c.categories))
	for i, cat := range c.categories {
		names[i] = cat.Name
	}
	return names
}

// CategoryMatch counts the tokens matched by one category.
type CategoryMatch struct {
	Category string   `json:"category"`
	Count    int      `json:"count"`
	Words    []string `json:"words"`

	position int
}

// Analysis is the raw per-category match report for a text.
type Analysis struct {
	// Matches holds only categories with at least one match, in category order.
	Matches      []CategoryMatch `json:"matches"`
	Unmatched    []string        `json:"unmatched"`
	TotalWords   int             `json:"totalWords"`
	TotalMatches int             `json:"totalMatches"`
}

// Count returns the match count for a category name.
func (a Analysis) Count(category string) int {
	for _, m := range a.Matches {
		if m.Category == category {
			return m.Count
		}
	}
	return 0
}

// AnalyzeSemantics counts category matches per token. A token may match several categories.
func (c *Classifier) AnalyzeSemantics(text string) Analysis {
	tokens := domain.Tokenize(text)
	counts := make([]int, len(c.categories))
	words := make([][]string, len(c.categories))
	analysis := Analysis{TotalWords: len(tokens)}

	for _, tok := range tokens {
		idxs, ok := c.index[tok]
		if !ok {
			analysis.Unmatched = append(analysis.Unmatched, tok)
			continue
		}
		for _, i := range idxs {
			counts[i]++
			words[i] = append(words[i], tok)
			analysis.TotalMatches++
		}
	}

	for i, n := range counts {
		if n == 0 {
			continue
		}
		analysis.Matches = append(analysis.Matches, CategoryMatch{
			Category: c.categories[i].Name,
			Count:    n,
			Words:    words[i],
			position: i,
		})
	}
	return analysis
}

// Dominant is the best-matching category for a text.
type Dominant struct {
	Category   domain.Category `json:"category"`
	Matches    int             `json:"matches"`
	Confidence float64         `json:"confidence"`
}

func (c *Classifier) neutral() domain.Category {
	return domain.Category{
		Name:   NeutralCategory,
		Scales: []string{c.defaultScale},
		Base:   domain.NeutralBase,
	}
}

// DominantCategory returns the category with the most matches. Ties go to the category
// that comes first in iteration order. Confidence is matches over total words.
func (c *Classifier) DominantCategory(text string) Dominant {
	analysis := c.AnalyzeSemantics(text)
	if analysis.TotalMatches == 0 || analysis.TotalWords == 0 {
		return Dominant{Category: c.neutral()}
	}

	best := analysis.Matches[0]
	for _, m := range analysis.Matches[1:] {
		if m.Count > best.Count {
			best = m
		}
	}
	return Dominant{
		Category:   cloneCategory(c.categories[best.position]),
		Matches:    best.Count,
		Confidence: float64(best.Count) / float64(analysis.TotalWords),
	}
}

// Blend is the match-weighted combination of every matched category.
type Blend struct {
	Base    domain.BaseParams  `json:"base"`
	Scales  []string           `json:"scales"`
	Weights map[string]float64 `json:"weights"`
}

// BlendedParameters weights each matched category by its share of all matches and sums
// their base parameters. Scale weights accumulate across categories; the top three are
// returned, ties kept in first-seen order.
func (c *Classifier) BlendedParameters(text string) Blend {
	analysis := c.AnalyzeSemantics(text)
	if analysis.TotalMatches == 0 {
		return Blend{
			Base:    domain.NeutralBase,
			Scales:  []string{c.defaultScale},
			Weights: map[string]float64{},
		}
	}

	total := float64(analysis.TotalMatches)
	blend := Blend{Weights: make(map[string]float64, len(analysis.Matches))}
	scaleWeight := make(map[string]float64)
	var scaleOrder []string

	for _, m := range analysis.Matches {
		cat := c.categories[m.position]
		w := float64(m.Count) / total
		blend.Weights[cat.Name] += w

		blend.Base.Motion += cat.Base.Motion * w
		blend.Base.Space += cat.Base.Space * w
		blend.Base.Complexity += cat.Base.Complexity * w
		blend.Base.Warmth += cat.Base.Warmth * w

		for _, s := range cat.Scales {
			if _, ok := scaleWeight[s]; !ok {
				scaleOrder = append(scaleOrder, s)
			}
			scaleWeight[s] += w
		}
	}

	sort.SliceStable(scaleOrder, func(i, j int) bool {
		return scaleWeight[scaleOrder[i]] > scaleWeight[scaleOrder[j]]
	})
	if len(scaleOrder) > maxScales {
		scaleOrder = scaleOrder[:maxScales]
	}
	if len(scaleOrder) == 0 {
		scaleOrder = []string{c.defaultScale}
	}
	blend.Scales = scaleOrder
	return blend
}

// LookupWord resolves a single token. It returns nil when the word is unknown,
// else the first matching category's scales and base parameters.
func (c *Classifier) LookupWord(word string) *domain.WordMatch {
	idxs, ok := c.index[domain.NormalizeWord(word)]
	if !ok || len(idxs) == 0 {
		return nil
	}
	cat := c.categories[idxs[0]]
	return &domain.WordMatch{
		Category: cat.Name,
		Scales:   append([]string(nil), cat.Scales...),
		Base:     cat.Base,
	}
}

func cloneCategory(cat domain.Category) domain.Category {
	cat.Scales = append([]string(nil), cat.Scales...)
	cat.Keywords = append([]string(nil), cat.Keywords...)
	return cat
}
