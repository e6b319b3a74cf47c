package app

import (
	"testing"
	"time"

	"github.com/basedlsg/PLugg-sub000/internal/domain"
	"github.com/basedlsg/PLugg-sub000/internal/fusion"
	"github.com/basedlsg/PLugg-sub000/internal/lexicon"
	"github.com/basedlsg/PLugg-sub000/internal/morph"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, publisher domain.EventPublisher) (*Session, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClock()
	s, err := NewSession(DefaultConfig(), Deps{Clock: clock, Publisher: publisher})
	require.NoError(t, err)
	return s, clock
}

func settle(s *Session, clock *clockwork.FakeClock) {
	clock.Advance(morph.DefaultBlendDuration)
	for range 2000 {
		s.Tick(morph.DefaultMaxDelta)
	}
}

func TestNewSession_AssignsID(t *testing.T) {
	s, _ := newTestSession(t, nil)
	assert.NotEqual(t, uuid.Nil, s.ID())

	id := uuid.New()
	fixed, err := NewSession(DefaultConfig(), Deps{SessionID: id, Clock: clockwork.NewFakeClock()})
	require.NoError(t, err)
	assert.Equal(t, id, fixed.ID())
}

func TestNewSession_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Morph.HistoryCapacity = 0

	_, err := NewSession(cfg, Deps{})
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestSubmitWord_BlendsTowardResult(t *testing.T) {
	s, clock := newTestSession(t, nil)

	result := s.SubmitWord("thunder")
	require.True(t, result.IsMagicWord)
	assert.Equal(t, morph.StateBlending.String(), s.Frame().State)

	settle(s, clock)

	frame := s.Frame()
	assert.Equal(t, morph.StateIdle.String(), frame.State)
	assert.InDelta(t, result.Parameters.Get(domain.Space), frame.Current.Get(domain.Space), 1e-3)
	assert.Equal(t, 2, frame.History)
}

func TestSettled(t *testing.T) {
	s, clock := newTestSession(t, nil)
	assert.True(t, s.Settled())

	s.SubmitWord("ocean")
	assert.False(t, s.Settled())

	settle(s, clock)
	assert.True(t, s.Settled())
}

func TestSubmitWord_EmptyIsNoop(t *testing.T) {
	s, _ := newTestSession(t, nil)

	s.SubmitWord("...")

	frame := s.Frame()
	assert.Equal(t, 1, frame.History)
	assert.Equal(t, morph.StateIdle.String(), frame.State)
}

func TestSubmitPhrase(t *testing.T) {
	s, _ := newTestSession(t, nil)

	result := s.SubmitPhrase("deep ocean waves")

	assert.Equal(t, "water", result.Category)
	assert.Len(t, s.Context().ShortTermWords, 3)
	assert.Equal(t, 2, s.Frame().History)
}

func TestAnticipate_DoesNotRecord(t *testing.T) {
	s, clock := newTestSession(t, nil)
	s.SubmitWord("fire")
	before := s.Context()

	preview := s.Anticipate("ocean", 0)

	assert.Equal(t, "water", preview.Category)
	assert.Equal(t, before, s.Context())
	assert.True(t, s.Frame().Anticipating)

	s.CancelAnticipation()
	assert.False(t, s.Frame().Anticipating)

	s.Anticipate("ocean", 0.5)
	clock.Advance(morph.DefaultAnticipationTTL)
	s.Tick(time.Millisecond)
	assert.False(t, s.Frame().Anticipating)
}

func TestSubmitWord_ClearsAnticipation(t *testing.T) {
	s, _ := newTestSession(t, nil)
	s.Anticipate("ocean", 0)

	s.SubmitWord("ocean")

	assert.False(t, s.Frame().Anticipating)
}

func TestUndoRedo(t *testing.T) {
	s, clock := newTestSession(t, nil)
	s.JumpTo(domain.Fragment{domain.Warmth: 0.9})
	s.JumpTo(domain.Fragment{domain.Warmth: 0.1})

	require.True(t, s.Undo())
	settle(s, clock)
	assert.InDelta(t, 0.9, s.Frame().Current.Get(domain.Warmth), 1e-3)

	require.True(t, s.Redo())
	settle(s, clock)
	assert.InDelta(t, 0.1, s.Frame().Current.Get(domain.Warmth), 1e-3)
	assert.False(t, s.Redo())

	assert.ErrorIs(t, s.GoTo(10), domain.ErrHistoryIndex)
	require.NoError(t, s.GoTo(0))
	assert.Equal(t, 0, s.Frame().Cursor)
}

func TestSetWeightsAndReset(t *testing.T) {
	s, _ := newTestSession(t, nil)

	require.NoError(t, s.SetWeights(map[fusion.Layer]float64{fusion.LayerContext: 0}))
	assert.Error(t, s.SetWeights(map[fusion.Layer]float64{fusion.LayerSemantic: -2}))

	s.SubmitWord("ocean")
	s.ResetContext()
	assert.Empty(t, s.Context().ShortTermWords)
}

func TestSession_UsesInjectedMagicWords(t *testing.T) {
	s, err := NewSession(DefaultConfig(), Deps{
		Clock:      clockwork.NewFakeClock(),
		MagicWords: map[string]domain.MagicWord{},
	})
	require.NoError(t, err)

	result := s.SubmitWord("thunder")

	assert.False(t, result.IsMagicWord)
	assert.NotEqual(t, lexicon.MagicWords()["thunder"].Parameters, result.Fused)
}
