package events

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/basedlsg/PLugg-sub000/internal/domain"
	"github.com/basedlsg/PLugg-sub000/internal/metrics"
)

const DefaultBufferSize = 64

// Channel implements domain.EventPublisher over a buffered channel. Publish never
// blocks: when the buffer is full the event is dropped and counted.
type Channel struct {
	ch chan domain.Event

	mu      sync.RWMutex
	closed  bool
	dropped atomic.Uint64
}

// NewChannel returns a channel publisher. A non-positive size uses DefaultBufferSize.
func NewChannel(size int) *Channel {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &Channel{ch: make(chan domain.Event, size)}
}

func (c *Channel) Publish(event domain.Event) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return
	}

	select {
	case c.ch <- event:
		metrics.EventsPublishedTotal.WithLabelValues(string(event.Kind)).Inc()
	default:
		c.dropped.Add(1)
		metrics.EventsDroppedTotal.WithLabelValues(string(event.Kind)).Inc()
		slog.Warn("Events: subscriber buffer full, dropping event", "kind", event.Kind, "session_id", event.SessionID)
	}
}

// Events returns the receive side. It is closed by Close.
func (c *Channel) Events() <-chan domain.Event {
	return c.ch
}

// Dropped returns the number of events discarded because the buffer was full.
func (c *Channel) Dropped() uint64 {
	return c.dropped.Load()
}

// Close stops delivery. Publishing after Close is a no-op. Close is idempotent.
func (c *Channel) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.ch)
}

// Func adapts a function to domain.EventPublisher. The function must return promptly.
type Func func(event domain.Event)

func (f Func) Publish(event domain.Event) {
	f(event)
}

// Discard drops every event.
var Discard domain.EventPublisher = Func(func(domain.Event) {})
