package accumulator

import (
	"math"
	"time"

	"github.com/basedlsg/PLugg-sub000/internal/domain"
	"github.com/jonboulle/clockwork"
)

// longTermParams are the running parameters kept in long-term memory.
var longTermParams = [...]domain.Param{
	domain.Brilliance,
	domain.Motion,
	domain.Space,
	domain.Warmth,
	domain.Complexity,
}

// WordData is the full analysis of one word as recorded in memory.
type WordData struct {
	Word       string
	Parameters domain.Vector
	Category   string
	Scales     []string
	Sentiment  domain.SentimentSample
}

func (w WordData) clone() WordData {
	w.Scales = append([]string(nil), w.Scales...)
	return w
}

// Accumulator is not safe for concurrent use; each session owns its own.
type Accumulator struct {
	cfg   Config
	clock clockwork.Clock

	immediate *WordData
	shortTerm []WordData

	longTerm        [len(longTermParams)]float64
	categoryWeights map[string]float64
	categoryOrder   []string
	sentiments      []domain.SentimentSample
	scales          []string
	lastUpdate      time.Time
}

func New(cfg Config, clock clockwork.Clock) (*Accumulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	a := &Accumulator{cfg: cfg, clock: clock}
	a.Reset()
	return a, nil
}

func (a *Accumulator) Config() Config {
	return a.cfg
}

// Reset clears every tier and restarts the elapsed-time clock.
func (a *Accumulator) Reset() {
	a.immediate = nil
	a.shortTerm = make([]WordData, 0, a.cfg.ShortTermSize)
	for i := range a.longTerm {
		a.longTerm[i] = domain.NeutralValue
	}
	a.categoryWeights = make(map[string]float64)
	a.categoryOrder = nil
	a.sentiments = nil
	a.scales = nil
	a.lastUpdate = time.Time{}
}

// AddWord decays long-term memory by the time elapsed since the previous word,
// then records data in every tier.
func (a *Accumulator) AddWord(data WordData) {
	data = data.clone()
	now := a.clock.Now()
	a.decay(now)
	a.lastUpdate = now

	a.immediate = &data
	a.shortTerm = append(a.shortTerm, data)
	if over := len(a.shortTerm) - a.cfg.ShortTermSize; over > 0 {
		a.shortTerm = append(a.shortTerm[:0:0], a.shortTerm[over:]...)
	}

	keep := a.cfg.ParameterDecay
	for i, p := range longTermParams {
		a.longTerm[i] = a.longTerm[i]*keep + data.Parameters.Get(p)*(1-keep)
	}

	if data.Category != "" {
		if _, ok := a.categoryWeights[data.Category]; !ok {
			a.categoryOrder = append(a.categoryOrder, data.Category)
		}
		a.categoryWeights[data.Category]++
	}

	a.sentiments = appendCapped(a.sentiments, data.Sentiment, sentimentHistoryCap)
	if len(data.Scales) > 0 {
		a.scales = appendCapped(a.scales, data.Scales[0], scaleHistoryCap)
	}
}

func (a *Accumulator) decay(now time.Time) {
	if a.lastUpdate.IsZero() {
		return
	}
	elapsed := now.Sub(a.lastUpdate).Seconds()
	if elapsed <= 0 {
		return
	}
	factor := DecayFactor(a.cfg.LongTermDecay, elapsed)
	for i := range a.longTerm {
		a.longTerm[i] = domain.NeutralValue + (a.longTerm[i]-domain.NeutralValue)*factor
	}
	for name := range a.categoryWeights {
		a.categoryWeights[name] *= factor
	}
}

// DecayFactor returns longTermDecay^elapsedSeconds.
func DecayFactor(longTermDecay, elapsedSeconds float64) float64 {
	return math.Pow(longTermDecay, elapsedSeconds)
}

func appendCapped[T any](s []T, v T, limit int) []T {
	s = append(s, v)
	if over := len(s) - limit; over > 0 {
		s = append(s[:0:0], s[over:]...)
	}
	return s
}

// Immediate returns the most recent word, if any.
func (a *Accumulator) Immediate() (WordData, bool) {
	if a.immediate == nil {
		return WordData{}, false
	}
	return a.immediate.clone(), true
}

// ShortTerm returns the recent words, oldest first.
func (a *Accumulator) ShortTerm() []WordData {
	out := make([]WordData, len(a.shortTerm))
	for i, w := range a.shortTerm {
		out[i] = w.clone()
	}
	return out
}

// Len returns the number of words held in short-term memory.
func (a *Accumulator) Len() int {
	return len(a.shortTerm)
}

// ShortTermAverages is the arithmetic mean over the short-term FIFO.
// It returns the default vector when the FIFO is empty.
func (a *Accumulator) ShortTermAverages() domain.Vector {
	vs := make([]domain.Vector, len(a.shortTerm))
	for i, w := range a.shortTerm {
		vs[i] = w.Parameters
	}
	return domain.MeanVector(vs)
}

// LongTerm returns the long-term running parameters.
func (a *Accumulator) LongTerm() domain.Fragment {
	f := make(domain.Fragment, len(longTermParams))
	for i, p := range longTermParams {
		f[p] = a.longTerm[i]
	}
	return f
}

// CategoryWeight returns the decayed weight accumulated for a category.
func (a *Accumulator) CategoryWeight(name string) float64 {
	return a.categoryWeights[name]
}

// SentimentHistory returns recorded samples, oldest first.
func (a *Accumulator) SentimentHistory() []domain.SentimentSample {
	return append([]domain.SentimentSample(nil), a.sentiments...)
}

// ScaleHistory returns recorded primary scales, oldest first.
func (a *Accumulator) ScaleHistory() []string {
	return append([]string(nil), a.scales...)
}

// DominantCategory returns the category with the highest weight. Ties go to the
// category first seen.
func (a *Accumulator) DominantCategory() (string, bool) {
	best, bestWeight := "", math.Inf(-1)
	for _, name := range a.categoryOrder {
		if w := a.categoryWeights[name]; w > bestWeight {
			best, bestWeight = name, w
		}
	}
	return best, best != ""
}

// DominantScale returns the most frequent scale in history. Ties go to the scale
// first seen.
func (a *Accumulator) DominantScale() (string, bool) {
	counts := make(map[string]int, len(a.scales))
	var order []string
	for _, s := range a.scales {
		if _, ok := counts[s]; !ok {
			order = append(order, s)
		}
		counts[s]++
	}
	best, bestCount := "", 0
	for _, s := range order {
		if counts[s] > bestCount {
			best, bestCount = s, counts[s]
		}
	}
	return best, best != ""
}

// SentimentTrend compares the older and newer halves of the last ten samples.
func (a *Accumulator) SentimentTrend() domain.SentimentTrend {
	recent := a.sentiments
	if len(recent) > trendWindow {
		recent = recent[len(recent)-trendWindow:]
	}

	trend := domain.SentimentTrend{
		Valence:   domain.DirectionStable,
		Arousal:   domain.DirectionStable,
		Stability: 1,
	}
	if len(recent) == 0 {
		return trend
	}

	valences := make([]float64, len(recent))
	for i, s := range recent {
		valences[i] = s.Valence
	}
	trend.Stability = math.Max(0, 1-2*stdev(valences))

	if len(recent) < 2 {
		return trend
	}
	half := len(recent) / 2
	older, newer := recent[:half], recent[half:]

	trend.ValenceDelta = meanOf(newer, valenceOf) - meanOf(older, valenceOf)
	trend.ArousalDelta = meanOf(newer, arousalOf) - meanOf(older, arousalOf)
	trend.Valence = direction(trend.ValenceDelta)
	trend.Arousal = direction(trend.ArousalDelta)
	return trend
}

func valenceOf(s domain.SentimentSample) float64 { return s.Valence }
func arousalOf(s domain.SentimentSample) float64 { return s.Arousal }

func meanOf(samples []domain.SentimentSample, field func(domain.SentimentSample) float64) float64 {
	sum := 0.0
	for _, s := range samples {
		sum += field(s)
	}
	return sum / float64(len(samples))
}

func stdev(xs []float64) float64 {
	mean := 0.0
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))
	variance := 0.0
	for _, x := range xs {
		variance += (x - mean) * (x - mean)
	}
	return math.Sqrt(variance / float64(len(xs)))
}

func direction(delta float64) domain.Direction {
	switch {
	case delta > trendThreshold:
		return domain.DirectionRising
	case delta < -trendThreshold:
		return domain.DirectionFalling
	default:
		return domain.DirectionStable
	}
}

// HarmonicDensity estimates how busy recent context is:
// 0.4*shortTermComplexity + 0.3*min(1, distinctCategories/5) + 0.3*min(1, fillRatio).
func (a *Accumulator) HarmonicDensity() float64 {
	complexity := a.ShortTermAverages().Get(domain.Complexity)

	distinct := make(map[string]struct{}, len(a.shortTerm))
	for _, w := range a.shortTerm {
		if w.Category != "" {
			distinct[w.Category] = struct{}{}
		}
	}
	variety := math.Min(1, float64(len(distinct))/categorySaturation)
	fill := math.Min(1, float64(len(a.shortTerm))/float64(a.cfg.ShortTermSize))

	return 0.4*complexity + 0.3*variety + 0.3*fill
}

// Snapshot returns a read-only summary of the current context.
func (a *Accumulator) Snapshot() domain.ContextSnapshot {
	snap := domain.ContextSnapshot{
		ShortTermWords:  make([]string, len(a.shortTerm)),
		LongTerm:        a.LongTerm(),
		HarmonicDensity: a.HarmonicDensity(),
		Trend:           a.SentimentTrend(),
	}
	if a.immediate != nil {
		snap.ImmediateWord = a.immediate.Word
	}
	for i, w := range a.shortTerm {
		snap.ShortTermWords[i] = w.Word
	}
	snap.DominantCategory, _ = a.DominantCategory()
	snap.DominantScale, _ = a.DominantScale()
	return snap
}

// Clone returns an independent deep copy sharing only the clock. Previews run
// against a clone so they never touch the session's memory.
func (a *Accumulator) Clone() *Accumulator {
	c := &Accumulator{
		cfg:             a.cfg,
		clock:           a.clock,
		shortTerm:       a.ShortTerm(),
		longTerm:        a.longTerm,
		categoryWeights: make(map[string]float64, len(a.categoryWeights)),
		categoryOrder:   append([]string(nil), a.categoryOrder...),
		sentiments:      a.SentimentHistory(),
		scales:          a.ScaleHistory(),
		lastUpdate:      a.lastUpdate,
	}
	if a.immediate != nil {
		imm := a.immediate.clone()
		c.immediate = &imm
	}
	for k, v := range a.categoryWeights {
		c.categoryWeights[k] = v
	}
	return c
}
