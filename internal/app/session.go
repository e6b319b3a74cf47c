package app

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/basedlsg/PLugg-sub000/internal/accumulator"
	"github.com/basedlsg/PLugg-sub000/internal/domain"
	"github.com/basedlsg/PLugg-sub000/internal/events"
	"github.com/basedlsg/PLugg-sub000/internal/fusion"
	"github.com/basedlsg/PLugg-sub000/internal/morph"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

type Config struct {
	Fusion  fusion.Config
	Context accumulator.Config
	Morph   morph.Config
}

func DefaultConfig() Config {
	return Config{
		Fusion:  fusion.DefaultConfig(),
		Context: accumulator.DefaultConfig(),
		Morph:   morph.DefaultConfig(),
	}
}

// Deps are optional collaborators. A nil SessionID is replaced by a random one.
type Deps struct {
	Phonetic   domain.PhoneticAnalyzer
	MagicWords map[string]domain.MagicWord
	Publisher  domain.EventPublisher
	Clock      clockwork.Clock
	SessionID  uuid.UUID
}

// Frame is the live state read by renderers and synthesizers.
type Frame struct {
	SessionID    uuid.UUID     `json:"sessionId"`
	Current      domain.Vector `json:"current"`
	Target       domain.Vector `json:"target"`
	State        string        `json:"state"`
	Progress     float64       `json:"progress"`
	Anticipating bool          `json:"anticipating"`
	History      int           `json:"history"`
	Cursor       int           `json:"cursor"`
}

// Session is safe for concurrent use.
type Session struct {
	id        uuid.UUID
	clock     clockwork.Clock
	publisher domain.EventPublisher

	mu      sync.Mutex
	engine  *fusion.Engine
	manager *morph.Manager
}

func NewSession(cfg Config, deps Deps) (*Session, error) {
	if deps.SessionID == uuid.Nil {
		deps.SessionID = uuid.New()
	}
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}
	if deps.Publisher == nil {
		deps.Publisher = events.Discard
	}

	acc, err := accumulator.New(cfg.Context, deps.Clock)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", deps.SessionID, err)
	}

	engine, err := fusion.New(cfg.Fusion, fusion.Deps{
		Phonetic:   deps.Phonetic,
		Context:    acc,
		MagicWords: deps.MagicWords,
		Publisher:  deps.Publisher,
		Clock:      deps.Clock,
		SessionID:  deps.SessionID,
	})
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", deps.SessionID, err)
	}

	manager, err := morph.New(cfg.Morph, deps.Clock, deps.Publisher, morph.WithSessionID(deps.SessionID))
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", deps.SessionID, err)
	}

	slog.Info("Session created", "session_id", deps.SessionID)
	return &Session{
		id:        deps.SessionID,
		clock:     deps.Clock,
		publisher: deps.Publisher,
		engine:    engine,
		manager:   manager,
	}, nil
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

// SubmitWord fuses word into context and blends the live vector toward the
// result. Input without letters changes nothing.
func (s *Session) SubmitWord(word string) domain.FusionResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := s.engine.ProcessWord(word)
	if domain.NormalizeWord(word) != "" {
		s.manager.BlendTo(result.Parameters.Fragment(), 0)
		s.manager.ClearAnticipation()
	}
	return result
}

// SubmitPhrase is SubmitWord for whitespace-separated text.
func (s *Session) SubmitPhrase(phrase string) domain.FusionResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := s.engine.ProcessPhrase(phrase)
	if len(domain.Tokenize(phrase)) > 0 {
		s.manager.BlendTo(result.Parameters.Fragment(), 0)
		s.manager.ClearAnticipation()
	}
	return result
}

// Anticipate previews word and biases the live vector toward the preview
// without recording anything. A non-positive influence uses the configured default.
func (s *Session) Anticipate(word string, influence float64) domain.FusionResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	preview := s.engine.Preview(word)
	if domain.NormalizeWord(word) != "" {
		s.manager.SetAnticipation(preview.Parameters.Fragment(), influence)
	}
	return preview
}

func (s *Session) CancelAnticipation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.manager.ClearAnticipation()
}

// JumpTo sets live values immediately.
func (s *Session) JumpTo(values domain.Fragment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.manager.JumpTo(values)
}

func (s *Session) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.manager.Back()
}

func (s *Session) Redo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.manager.Forward()
}

func (s *Session) GoTo(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.manager.GoTo(index)
}

func (s *Session) SetWeights(updates map[fusion.Layer]float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.SetWeights(updates)
}

// ResetContext forgets accumulated context. Live values are left in place.
func (s *Session) ResetContext() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.Reset()
}

// Context returns a snapshot of accumulated context.
func (s *Session) Context() domain.ContextSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Context().Snapshot()
}

// Tick advances the live vector by dt and reports whether it changed.
func (s *Session) Tick(dt time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.manager.Update(dt)
}

// Settled reports whether the live vector has come to rest on its target.
func (s *Session) Settled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.manager.Settled()
}

func (s *Session) Frame() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame()
}

func (s *Session) frame() Frame {
	entries, cursor := s.manager.History()
	return Frame{
		SessionID:    s.id,
		Current:      s.manager.Current(),
		Target:       s.manager.Target(),
		State:        s.manager.State().String(),
		Progress:     s.manager.Progress(),
		Anticipating: s.manager.AnticipationActive(),
		History:      len(entries),
		Cursor:       cursor,
	}
}
