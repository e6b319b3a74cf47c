package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/basedlsg/PLugg-sub000/internal/domain"
	"github.com/basedlsg/PLugg-sub000/internal/metrics"
	"github.com/basedlsg/PLugg-sub000/internal/platform/correlation"
)

// DefaultFrameInterval is one frame at 60 Hz.
const DefaultFrameInterval = time.Second / 60

// Run ticks the session on every interval and publishes an EventFrame whenever
// the live vector changed. It blocks until ctx is cancelled.
func (s *Session) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	ctx = correlation.WithSession(correlation.WithID(ctx, correlation.NewID()), s.id)

	ticker := s.clock.NewTicker(interval)
	defer ticker.Stop()

	metrics.SessionsActive.Inc()
	defer metrics.SessionsActive.Dec()

	slog.InfoContext(ctx, "Session: frame loop started", "interval", interval)
	defer slog.InfoContext(ctx, "Session: frame loop stopped")

	last := s.clock.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			now := s.clock.Now()
			dt := now.Sub(last)
			last = now
			s.step(ctx, dt)
		}
	}
}

func (s *Session) step(ctx context.Context, dt time.Duration) {
	s.mu.Lock()
	changed := s.manager.Update(dt)
	var frame Frame
	if changed {
		frame = s.frame()
	}
	s.mu.Unlock()

	if !changed {
		return
	}
	s.publisher.Publish(domain.Event{
		Kind:      domain.EventFrame,
		SessionID: s.id,
		Vector:    frame.Current,
		At:        s.clock.Now(),
	})
	slog.DebugContext(ctx, "Session: frame", "state", frame.State, "progress", frame.Progress)
}
