package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Fusion Metrics
var (
	// WordsProcessedTotal tracks processed inputs by path (standard/magic/phrase/preview)
	WordsProcessedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordsynth_words_processed_total",
			Help: "Total inputs processed by the fusion engine by path",
		},
		[]string{"path"},
	)

	// FusionDuration tracks time spent fusing one input
	FusionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wordsynth_fusion_duration_seconds",
			Help:    "Fusion engine processing duration in seconds",
			Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
		},
		[]string{"path"},
	)

	// SemanticMatchesTotal tracks single-word semantic lookups by result (hit/miss)
	SemanticMatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordsynth_semantic_lookups_total",
			Help: "Semantic word lookups by result",
		},
		[]string{"result"},
	)

	// WeightUpdatesTotal tracks layer weight changes by result (applied/rejected)
	WeightUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordsynth_weight_updates_total",
			Help: "Fusion layer weight updates by result",
		},
		[]string{"result"},
	)
)

// Morph Metrics
var (
	// MorphTicksTotal tracks parameter manager ticks by result (changed/settled)
	MorphTicksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordsynth_morph_ticks_total",
			Help: "Parameter manager ticks by result",
		},
		[]string{"result"},
	)

	// BlendsTotal tracks blends by outcome (started/completed/interrupted)
	BlendsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordsynth_blends_total",
			Help: "Target blends by outcome",
		},
		[]string{"outcome"},
	)

	// AnticipationTotal tracks anticipation by outcome (set/cleared/expired)
	AnticipationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordsynth_anticipation_total",
			Help: "Anticipation requests by outcome",
		},
		[]string{"outcome"},
	)

	// HistoryNavigationsTotal tracks undo/redo moves by direction (back/forward/goto)
	HistoryNavigationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordsynth_history_navigations_total",
			Help: "History navigations by direction",
		},
		[]string{"direction"},
	)

	// HistoryEntries tracks the history length of the most recently updated manager
	HistoryEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wordsynth_history_entries",
			Help: "History entries held by the most recently updated parameter manager",
		},
	)
)

// Session Metrics
var (
	// SessionsActive tracks sessions currently running a frame loop
	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wordsynth_sessions_active",
			Help: "Number of sessions running a frame loop",
		},
	)

	// EventsPublishedTotal tracks events by kind
	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordsynth_events_published_total",
			Help: "Events published by kind",
		},
		[]string{"kind"},
	)

	// EventsDroppedTotal tracks events dropped because a subscriber buffer was full
	EventsDroppedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordsynth_events_dropped_total",
			Help: "Events dropped due to a full subscriber buffer, by kind",
		},
		[]string{"kind"},
	)
)
