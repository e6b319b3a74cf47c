package domain

import (
	"time"

	"github.com/google/uuid"
)

type EventKind string

const (
	EventWordProcessed       EventKind = "word_processed"
	EventMagicWord           EventKind = "magic_word"
	EventPhraseProcessed     EventKind = "phrase_processed"
	EventBlendCompleted      EventKind = "blend_completed"
	EventAnticipationExpired EventKind = "anticipation_expired"
	EventHistoryMoved        EventKind = "history_moved"
	EventFrame               EventKind = "frame"
)

// Event is a notification emitted by a session's components.
type Event struct {
	Kind      EventKind `json:"kind"`
	SessionID uuid.UUID `json:"sessionId"`
	Input     string    `json:"input,omitempty"`
	Vector    Vector    `json:"vector"`
	At        time.Time `json:"at"`
}

// EventPublisher receives events. Implementations must not block the caller.
type EventPublisher interface {
	Publish(event Event)
}
