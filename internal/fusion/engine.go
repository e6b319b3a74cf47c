package fusion

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/basedlsg/PLugg-sub000/internal/accumulator"
	"github.com/basedlsg/PLugg-sub000/internal/domain"
	"github.com/basedlsg/PLugg-sub000/internal/events"
	"github.com/basedlsg/PLugg-sub000/internal/lexicon"
	"github.com/basedlsg/PLugg-sub000/internal/metrics"
	"github.com/basedlsg/PLugg-sub000/internal/phonetic"
	"github.com/basedlsg/PLugg-sub000/internal/semantic"
	"github.com/basedlsg/PLugg-sub000/internal/sentiment"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

const (
	pathStandard = "standard"
	pathMagic    = "magic"
	pathPhrase   = "phrase"
	pathPreview  = "preview"
)

// Deps are the collaborators of an Engine. Nil fields fall back to the shipped
// dictionaries, a neutral phonetic layer, a fresh accumulator and a discarding
// publisher. A non-nil empty MagicWords map disables magic words.
type Deps struct {
	Phonetic   domain.PhoneticAnalyzer
	Semantic   *semantic.Classifier
	Sentiment  *sentiment.Scorer
	Context    *accumulator.Accumulator
	MagicWords map[string]domain.MagicWord
	Publisher  domain.EventPublisher
	Clock      clockwork.Clock
	SessionID  uuid.UUID
}

// Engine is not safe for concurrent use.
type Engine struct {
	cfg Config

	phonetic  domain.PhoneticAnalyzer
	semantic  *semantic.Classifier
	sentiment *sentiment.Scorer
	magic     map[string]domain.MagicWord
	publisher domain.EventPublisher
	clock     clockwork.Clock
	sessionID uuid.UUID

	st state
}

// state is everything ProcessWord mutates.
type state struct {
	acc    *accumulator.Accumulator
	smooth smoother
}

func (s *state) clone() state {
	return state{acc: s.acc.Clone(), smooth: s.smooth}
}

func New(cfg Config, deps Deps) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("fusion engine: %w", err)
	}

	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}
	if deps.Phonetic == nil {
		deps.Phonetic = phonetic.Neutral{}
	}
	if deps.Semantic == nil {
		deps.Semantic = semantic.New(lexicon.Categories(), cfg.DefaultScale)
	}
	if deps.Sentiment == nil {
		deps.Sentiment = sentiment.New(lexicon.Sentiment())
	}
	if deps.MagicWords == nil {
		deps.MagicWords = lexicon.MagicWords()
	}
	if deps.Publisher == nil {
		deps.Publisher = events.Discard
	}
	if deps.Context == nil {
		acc, err := accumulator.New(accumulator.DefaultConfig(), deps.Clock)
		if err != nil {
			return nil, fmt.Errorf("fusion engine: %w", err)
		}
		deps.Context = acc
	}

	magic := make(map[string]domain.MagicWord, len(deps.MagicWords))
	for word, entry := range deps.MagicWords {
		magic[domain.NormalizeWord(word)] = entry
	}

	return &Engine{
		cfg:       cfg,
		phonetic:  deps.Phonetic,
		semantic:  deps.Semantic,
		sentiment: deps.Sentiment,
		magic:     magic,
		publisher: deps.Publisher,
		clock:     deps.Clock,
		sessionID: deps.SessionID,
		st:        state{acc: deps.Context},
	}, nil
}

func (e *Engine) Config() Config {
	return e.cfg
}

// Context returns the accumulator the engine records into.
func (e *Engine) Context() *accumulator.Accumulator {
	return e.st.acc
}

// SetWeights replaces the given layer weights. The update is all or nothing.
func (e *Engine) SetWeights(updates map[Layer]float64) error {
	cfg, err := e.cfg.withLayers(updates)
	if err != nil {
		metrics.WeightUpdatesTotal.WithLabelValues("rejected").Inc()
		return fmt.Errorf("set weights: %w", err)
	}
	e.cfg = cfg
	metrics.WeightUpdatesTotal.WithLabelValues("applied").Inc()
	slog.Debug("Engine: weights updated", "session_id", e.sessionID, "weights", cfg.Weights, "context", cfg.ContextInfluence)
	return nil
}

// Reset clears accumulated context and the smoothing history.
func (e *Engine) Reset() {
	e.st.acc.Reset()
	e.st.smooth = smoother{}
}

// IsMagicWord reports whether word is in the magic-word registry.
func (e *Engine) IsMagicWord(word string) bool {
	_, ok := e.magic[domain.NormalizeWord(word)]
	return ok
}

// ProcessWord fuses one word and records it into context.
func (e *Engine) ProcessWord(word string) domain.FusionResult {
	result, path := e.process(&e.st, word)
	if path != "" {
		kind := domain.EventWordProcessed
		if result.IsMagicWord {
			kind = domain.EventMagicWord
		}
		e.publish(kind, result)
	}
	return result
}

// Preview returns what ProcessWord would produce without touching context,
// smoothing state or subscribers.
func (e *Engine) Preview(word string) domain.FusionResult {
	st := e.st.clone()
	start := time.Now()
	result := e.run(&st, domain.NormalizeWord(word))
	metrics.WordsProcessedTotal.WithLabelValues(pathPreview).Inc()
	metrics.FusionDuration.WithLabelValues(pathPreview).Observe(time.Since(start).Seconds())
	return result
}

// process runs one word and reports the metrics path it took. An empty path
// means the input held no letters and nothing was recorded.
func (e *Engine) process(st *state, word string) (domain.FusionResult, string) {
	w := domain.NormalizeWord(word)
	if w == "" {
		return e.neutralResult(st, word), ""
	}

	start := time.Now()
	result := e.run(st, w)
	path := pathStandard
	if result.IsMagicWord {
		path = pathMagic
	}
	metrics.WordsProcessedTotal.WithLabelValues(path).Inc()
	metrics.FusionDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())

	slog.Debug("Engine: processed word",
		"session_id", e.sessionID,
		"word", w,
		"category", result.Category,
		"scales", result.Scales,
		"magic", result.IsMagicWord)
	return result, path
}

func (e *Engine) run(st *state, w string) domain.FusionResult {
	if w == "" {
		return e.neutralResult(st, w)
	}
	if entry, ok := e.magic[w]; ok {
		return e.runMagic(st, w, entry)
	}

	layers := domain.Layers{
		Phonetic:  e.phonetic.Analyze(w),
		Semantic:  e.semantic.LookupWord(w),
		Sentiment: e.sentiment.AnalyzeSentiment(w),
	}
	if layers.Phonetic == nil {
		layers.Phonetic = domain.Fragment{}
	}

	var semanticFragment domain.Fragment
	var category string
	var categoryScales []string
	if layers.Semantic != nil {
		semanticFragment = layers.Semantic.Base.Fragment()
		category = layers.Semantic.Category
		categoryScales = layers.Semantic.Scales
		metrics.SemanticMatchesTotal.WithLabelValues("hit").Inc()
	} else {
		metrics.SemanticMatchesTotal.WithLabelValues("miss").Inc()
	}

	fused := fuse(e.cfg.Weights, layers.Phonetic, semanticFragment, sentimentFragment(layers.Sentiment))
	scales := selectScales(st.acc, categoryScales, e.cfg.DefaultScale)
	contextual := applyContext(st.acc, fused, e.cfg.ContextInfluence)

	st.acc.AddWord(accumulator.WordData{
		Word:       w,
		Parameters: fused,
		Category:   category,
		Scales:     scales,
		Sentiment:  layers.Sentiment,
	})

	return domain.FusionResult{
		Input:      w,
		Layers:     layers,
		Fused:      fused,
		Parameters: st.smooth.apply(contextual, e.cfg.Smoothing),
		Scales:     scales,
		Category:   category,
		Context:    st.acc.Snapshot(),
	}
}

// runMagic uses the authored vector as the fused result. The phonetic and
// sentiment layers are still read so context history stays complete.
func (e *Engine) runMagic(st *state, w string, entry domain.MagicWord) domain.FusionResult {
	layers := domain.Layers{
		Phonetic:  e.phonetic.Analyze(w),
		Sentiment: e.sentiment.AnalyzeSentiment(w),
	}
	if layers.Phonetic == nil {
		layers.Phonetic = domain.Fragment{}
	}

	fused := entry.Parameters
	scales := selectScales(st.acc, entry.Scales, e.cfg.DefaultScale)
	contextual := applyContext(st.acc, fused, e.cfg.MagicContextInfluence)

	st.acc.AddWord(accumulator.WordData{
		Word:       w,
		Parameters: fused,
		Category:   entry.Category,
		Scales:     scales,
		Sentiment:  layers.Sentiment,
	})

	visual := entry.Visual
	visual.Palette = append([]string(nil), entry.Visual.Palette...)

	return domain.FusionResult{
		Input:            w,
		Layers:           layers,
		Fused:            fused,
		Parameters:       st.smooth.apply(contextual, e.cfg.Smoothing),
		Scales:           scales,
		Category:         entry.Category,
		Context:          st.acc.Snapshot(),
		IsMagicWord:      true,
		MagicDescription: entry.Description,
		IsApexWord:       entry.IsApexWord,
		TriggerAIImage:   entry.TriggerAIImage,
		Visual:           visual,
	}
}

// ProcessPhrase processes every token as a word, then fuses the mean of those
// outputs with the phrase-wide semantic blend and sentiment. The phrase result
// is smoothed but not pulled by context a second time.
func (e *Engine) ProcessPhrase(phrase string) domain.FusionResult {
	tokens := domain.Tokenize(phrase)
	if len(tokens) == 0 {
		return e.neutralResult(&e.st, phrase)
	}

	start := time.Now()
	outputs := make([]domain.Vector, 0, len(tokens))
	for _, tok := range tokens {
		outputs = append(outputs, e.ProcessWord(tok).Parameters)
	}
	mean := domain.MeanVector(outputs)

	blend := e.semantic.BlendedParameters(phrase)
	sample := e.sentiment.AnalyzeSentiment(phrase)

	var semanticFragment domain.Fragment
	var match *domain.WordMatch
	if len(blend.Weights) > 0 {
		semanticFragment = blend.Base.Fragment()
		match = &domain.WordMatch{
			Category: e.semantic.DominantCategory(phrase).Category.Name,
			Scales:   blend.Scales,
			Base:     blend.Base,
		}
	}

	phoneticSlot := mean.Fragment()
	fused := fuse(e.cfg.Weights, phoneticSlot, semanticFragment, sentimentFragment(sample))

	result := domain.FusionResult{
		Input: phrase,
		Layers: domain.Layers{
			Phonetic:  phoneticSlot,
			Semantic:  match,
			Sentiment: sample,
		},
		Fused:      fused,
		Parameters: e.st.smooth.apply(fused, e.cfg.Smoothing),
		Scales:     append([]string(nil), blend.Scales...),
		Context:    e.st.acc.Snapshot(),
	}
	if match != nil {
		result.Category = match.Category
	}

	metrics.WordsProcessedTotal.WithLabelValues(pathPhrase).Inc()
	metrics.FusionDuration.WithLabelValues(pathPhrase).Observe(time.Since(start).Seconds())
	slog.Debug("Engine: processed phrase", "session_id", e.sessionID, "tokens", len(tokens), "category", result.Category, "scales", result.Scales)

	e.publish(domain.EventPhraseProcessed, result)
	return result
}

// ApplyContext pulls params toward the engine's accumulated context.
func (e *Engine) ApplyContext(params domain.Vector, influence float64) domain.Vector {
	return applyContext(e.st.acc, params, domain.Clamp01(influence))
}

// Smooth blends params with the previous engine output and records the result
// as the new previous output.
func (e *Engine) Smooth(params domain.Vector) domain.Vector {
	return e.st.smooth.apply(params, e.cfg.Smoothing)
}

// SelectScales orders at most three scales for a category's preferred list.
func (e *Engine) SelectScales(categoryScales []string) []string {
	return selectScales(e.st.acc, categoryScales, e.cfg.DefaultScale)
}

func (e *Engine) neutralResult(st *state, input string) domain.FusionResult {
	return domain.FusionResult{
		Input: input,
		Layers: domain.Layers{
			Phonetic:  domain.Fragment{},
			Sentiment: domain.NeutralSentiment,
		},
		Fused:      domain.NewVector(),
		Parameters: domain.NewVector(),
		Scales:     []string{e.cfg.DefaultScale},
		Context:    st.acc.Snapshot(),
	}
}

func (e *Engine) publish(kind domain.EventKind, result domain.FusionResult) {
	e.publisher.Publish(domain.Event{
		Kind:      kind,
		SessionID: e.sessionID,
		Input:     result.Input,
		Vector:    result.Parameters,
		At:        e.clock.Now(),
	})
}

// sentimentFragment maps a sample to parameters, or nil when no token carried sentiment.
func sentimentFragment(s domain.SentimentSample) domain.Fragment {
	if s.Matched == 0 {
		return nil
	}
	return sentiment.MapToSynthParams(s)
}
