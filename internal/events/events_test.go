package events

import (
	"testing"

	"github.com/basedlsg/PLugg-sub000/internal/domain"
	"github.com/basedlsg/PLugg-sub000/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannel_DeliversInOrder(t *testing.T) {
	c := NewChannel(4)
	c.Publish(domain.Event{Kind: domain.EventWordProcessed, Input: "ocean"})
	c.Publish(domain.Event{Kind: domain.EventMagicWord, Input: "thunder"})

	first := <-c.Events()
	second := <-c.Events()
	assert.Equal(t, "ocean", first.Input)
	assert.Equal(t, "thunder", second.Input)
	assert.Zero(t, c.Dropped())
}

func TestChannel_DropsWhenFull(t *testing.T) {
	metrics.EventsDroppedTotal.Reset()
	c := NewChannel(1)

	c.Publish(domain.Event{Kind: domain.EventFrame})
	c.Publish(domain.Event{Kind: domain.EventFrame})
	c.Publish(domain.Event{Kind: domain.EventFrame})

	assert.Equal(t, uint64(2), c.Dropped())
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.EventsDroppedTotal.WithLabelValues(string(domain.EventFrame))))
	assert.Len(t, c.Events(), 1)
}

func TestChannel_DefaultSize(t *testing.T) {
	c := NewChannel(0)
	assert.Equal(t, DefaultBufferSize, cap(c.Events()))
}

func TestChannel_CloseIsIdempotent(t *testing.T) {
	c := NewChannel(2)
	c.Publish(domain.Event{Kind: domain.EventFrame})
	c.Close()
	c.Close()

	c.Publish(domain.Event{Kind: domain.EventFrame})

	_, ok := <-c.Events()
	require.True(t, ok, "buffered event survives close")
	_, ok = <-c.Events()
	assert.False(t, ok)
}

func TestFunc_Publish(t *testing.T) {
	var got []domain.EventKind
	pub := Func(func(e domain.Event) { got = append(got, e.Kind) })

	pub.Publish(domain.Event{Kind: domain.EventBlendCompleted})
	Discard.Publish(domain.Event{Kind: domain.EventFrame})

	assert.Equal(t, []domain.EventKind{domain.EventBlendCompleted}, got)
}
