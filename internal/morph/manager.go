package morph

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/basedlsg/PLugg-sub000/internal/domain"
	"github.com/basedlsg/PLugg-sub000/internal/events"
	"github.com/basedlsg/PLugg-sub000/internal/metrics"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// State is the blend state of a Manager. Anticipation is tracked separately.
type State int

const (
	StateIdle State = iota
	StateBlending
)

func (s State) String() string {
	switch s {
	case StateBlending:
		return "blending"
	default:
		return "idle"
	}
}

type anticipation struct {
	active    bool
	predicted domain.Vector
	influence float64
	expires   time.Time
}

type blend struct {
	active   bool
	source   domain.Vector
	dest     domain.Vector
	start    time.Time
	duration time.Duration
	progress float64
}

// Option configures a Manager.
type Option func(*Manager)

// WithSessionID tags published events with id.
func WithSessionID(id uuid.UUID) Option {
	return func(m *Manager) { m.sessionID = id }
}

// Manager is not safe for concurrent use.
type Manager struct {
	cfg       Config
	speeds    [domain.NumParams]float64
	clock     clockwork.Clock
	publisher domain.EventPublisher
	sessionID uuid.UUID

	current      domain.Vector
	target       domain.Vector
	velocity     [domain.NumParams]float64
	acceleration [domain.NumParams]float64

	anticipation anticipation
	blend        blend
	history      *history
}

func New(cfg Config, clock clockwork.Clock, publisher domain.EventPublisher, opts ...Option) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("parameter manager: %w", err)
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if publisher == nil {
		publisher = events.Discard
	}

	m := &Manager{
		cfg:       cfg,
		speeds:    cfg.speedTable(),
		clock:     clock,
		publisher: publisher,
		current:   domain.NewVector(),
		target:    domain.NewVector(),
		history:   newHistory(cfg.HistoryCapacity),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.history.commit(m.target)
	return m, nil
}

func (m *Manager) Current() domain.Vector { return m.current }

func (m *Manager) Target() domain.Vector { return m.target }

func (m *Manager) Velocity(p domain.Param) float64 {
	if !p.Valid() {
		return 0
	}
	return m.velocity[p]
}

func (m *Manager) Acceleration(p domain.Param) float64 {
	if !p.Valid() {
		return 0
	}
	return m.acceleration[p]
}

// Speed returns the resolved speed multiplier of p.
func (m *Manager) Speed(p domain.Param) float64 {
	if !p.Valid() {
		return DefaultSpeed
	}
	return m.speeds[p]
}

func (m *Manager) State() State {
	if m.blend.active {
		return StateBlending
	}
	return StateIdle
}

// BlendProgress returns the eased blend's linear progress, or 1 when idle.
func (m *Manager) BlendProgress() float64 {
	if !m.blend.active {
		return 1
	}
	return m.blend.progress
}

func (m *Manager) AnticipationActive() bool {
	return m.anticipation.active
}

// Settled reports whether no blend or anticipation is running and every
// parameter is at rest on its target.
func (m *Manager) Settled() bool {
	if m.blend.active || m.anticipation.active {
		return false
	}
	for p := domain.Param(0); p < domain.NumParams; p++ {
		if math.Abs(m.target.Get(p)-m.current.Get(p)) >= settleEpsilon || math.Abs(m.velocity[p]) >= settleEpsilon {
			return false
		}
	}
	return true
}

// Progress is 1 minus the mean distance between target and current over the
// bounded parameters.
func (m *Manager) Progress() float64 {
	bounded := domain.BoundedParams()
	sum := 0.0
	for _, p := range bounded {
		sum += math.Abs(m.target.Get(p) - m.current.Get(p))
	}
	return 1 - sum/float64(len(bounded))
}

// SetTargets overlays targets on the committed target. The momentum stage moves
// the live values there without a blend.
func (m *Manager) SetTargets(targets domain.Fragment) {
	m.cancelBlend()
	m.target = m.target.With(targets)
	m.commit()
}

// BlendTo eases the committed target toward targets over duration. A
// non-positive duration uses the configured default.
func (m *Manager) BlendTo(targets domain.Fragment, duration time.Duration) {
	m.startBlend(targets, duration)
	m.commit()
}

func (m *Manager) startBlend(targets domain.Fragment, duration time.Duration) {
	if duration <= 0 {
		duration = m.cfg.BlendDuration
	}
	m.cancelBlend()
	m.blend = blend{
		active:   true,
		source:   m.target,
		dest:     m.target.With(targets),
		start:    m.clock.Now(),
		duration: duration,
	}
	metrics.BlendsTotal.WithLabelValues("started").Inc()
}

// JumpTo sets current and target for every given parameter in one step and
// zeroes their motion. Any active blend or anticipation is cancelled.
func (m *Manager) JumpTo(values domain.Fragment) {
	m.cancelBlend()
	m.target = m.target.With(values)
	m.current = m.current.With(values)
	m.ClearAnticipation()
	for p := range values {
		if p.Valid() {
			m.velocity[p] = 0
			m.acceleration[p] = 0
		}
	}
	m.commit()
}

func (m *Manager) cancelBlend() {
	if m.blend.active {
		metrics.BlendsTotal.WithLabelValues("interrupted").Inc()
	}
	m.blend = blend{}
}

func (m *Manager) commit() {
	m.history.commit(m.historyTarget())
	metrics.HistoryEntries.Set(float64(len(m.history.entries)))
}

// historyTarget is the vector a commit records: the blend destination while
// blending, else the committed target.
func (m *Manager) historyTarget() domain.Vector {
	if m.blend.active {
		return m.blend.dest
	}
	return m.target
}

// SetAnticipation biases motion toward predicted until the anticipation TTL
// elapses. A non-positive influence uses the configured default.
func (m *Manager) SetAnticipation(predicted domain.Fragment, influence float64) {
	if influence <= 0 || math.IsNaN(influence) {
		influence = m.cfg.AnticipationInfluence
	}
	m.anticipation = anticipation{
		active:    true,
		predicted: m.target.With(predicted),
		influence: math.Min(1, influence),
		expires:   m.clock.Now().Add(m.cfg.AnticipationTTL),
	}
	metrics.AnticipationTotal.WithLabelValues("set").Inc()
}

// ClearAnticipation drops any anticipation immediately. Calling it when nothing
// is anticipated does nothing.
func (m *Manager) ClearAnticipation() {
	if !m.anticipation.active {
		return
	}
	m.anticipation = anticipation{}
	metrics.AnticipationTotal.WithLabelValues("cleared").Inc()
}

// History returns the committed targets, oldest first, and the cursor position.
// The first entry is the starting vector until it is pushed out by capacity.
func (m *Manager) History() ([]domain.Vector, int) {
	return m.history.snapshot(), m.history.cursor
}

// Back blends to the previous history entry. It reports false at the oldest entry.
func (m *Manager) Back() bool {
	v, ok := m.history.back()
	if !ok {
		return false
	}
	m.navigate("back", v)
	return true
}

// Forward blends to the next history entry. It reports false at the newest entry.
func (m *Manager) Forward() bool {
	v, ok := m.history.forward()
	if !ok {
		return false
	}
	m.navigate("forward", v)
	return true
}

// GoTo blends to the history entry at index.
func (m *Manager) GoTo(index int) error {
	v, err := m.history.goTo(index)
	if err != nil {
		return err
	}
	m.navigate("goto", v)
	return nil
}

func (m *Manager) navigate(direction string, v domain.Vector) {
	m.startBlend(v.Fragment(), m.cfg.BlendDuration)
	metrics.HistoryNavigationsTotal.WithLabelValues(direction).Inc()
	slog.Debug("Morph: history moved", "session_id", m.sessionID, "direction", direction, "cursor", m.history.cursor)
	m.publish(domain.EventHistoryMoved, v)
}

// Update advances the live vector by dt, capped at the configured maximum. It
// reports whether any value changed.
func (m *Manager) Update(dt time.Duration) bool {
	now := m.clock.Now()
	changed := false

	if m.anticipation.active && !now.Before(m.anticipation.expires) {
		m.anticipation = anticipation{}
		metrics.AnticipationTotal.WithLabelValues("expired").Inc()
		m.publish(domain.EventAnticipationExpired, m.current)
	}

	if m.blend.active {
		m.advanceBlend(now)
		changed = true
	}

	if dt > m.cfg.MaxDelta {
		dt = m.cfg.MaxDelta
	}
	if dt < 0 {
		dt = 0
	}
	seconds := dt.Seconds()

	for p := domain.Param(0); p < domain.NumParams; p++ {
		cur := m.current.Get(p)
		effective := m.target.Get(p)
		if m.anticipation.active {
			effective = cur + (m.anticipation.predicted.Get(p)-cur)*m.anticipation.influence
		}

		diff := effective - cur
		if math.Abs(diff) < settleEpsilon && math.Abs(m.velocity[p]) < settleEpsilon {
			continue
		}

		m.acceleration[p] = diff * m.cfg.AccelerationFactor
		v := m.velocity[p]*m.cfg.MomentumDecay + m.acceleration[p]
		m.velocity[p] = clampVelocity(v, m.cfg.MaxVelocity)
		m.current.Set(p, cur+m.velocity[p]*seconds*m.speeds[p])
		changed = true
	}

	result := "settled"
	if changed {
		result = "changed"
	}
	metrics.MorphTicksTotal.WithLabelValues(result).Inc()
	return changed
}

// clampVelocity limits v to [-limit, limit]. A non-finite velocity stops the parameter.
func clampVelocity(v, limit float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-limit, math.Min(limit, v))
}

// advanceBlend re-derives the committed target from the eased blend position.
func (m *Manager) advanceBlend(now time.Time) {
	progress := float64(now.Sub(m.blend.start)) / float64(m.blend.duration)
	progress = math.Max(m.blend.progress, math.Min(1, progress))
	m.blend.progress = progress

	if progress >= 1 {
		m.target = m.blend.dest
		m.blend = blend{}
		metrics.BlendsTotal.WithLabelValues("completed").Inc()
		slog.Debug("Morph: blend completed", "session_id", m.sessionID)
		m.publish(domain.EventBlendCompleted, m.target)
		return
	}

	eased := EaseInOutCubic(progress)
	for p := domain.Param(0); p < domain.NumParams; p++ {
		src := m.blend.source.Get(p)
		m.target.Set(p, src+(m.blend.dest.Get(p)-src)*eased)
	}
}

// EaseInOutCubic maps linear progress in [0,1] onto an S-curve.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

func (m *Manager) publish(kind domain.EventKind, v domain.Vector) {
	m.publisher.Publish(domain.Event{
		Kind:      kind,
		SessionID: m.sessionID,
		Vector:    v,
		At:        m.clock.Now(),
	})
}
