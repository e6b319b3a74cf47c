package morph

import (
	"github.com/basedlsg/PLugg-sub000/internal/domain"
	apperrors "github.com/basedlsg/PLugg-sub000/internal/errors"
)

// history is a bounded undo/redo list of committed targets.
type history struct {
	entries  []domain.Vector
	cursor   int
	capacity int
}

func newHistory(capacity int) *history {
	return &history{cursor: -1, capacity: capacity}
}

// commit appends v. Entries ahead of the cursor are discarded first; the oldest
// entry is dropped once capacity is exceeded.
func (h *history) commit(v domain.Vector) {
	if h.cursor < len(h.entries)-1 {
		h.entries = h.entries[:h.cursor+1]
	}
	h.entries = append(h.entries, v)
	if over := len(h.entries) - h.capacity; over > 0 {
		h.entries = append(h.entries[:0:0], h.entries[over:]...)
	}
	h.cursor = len(h.entries) - 1
}

func (h *history) back() (domain.Vector, bool) {
	if h.cursor <= 0 {
		return domain.Vector{}, false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

func (h *history) forward() (domain.Vector, bool) {
	if h.cursor >= len(h.entries)-1 {
		return domain.Vector{}, false
	}
	h.cursor++
	return h.entries[h.cursor], true
}

func (h *history) goTo(index int) (domain.Vector, error) {
	if index < 0 || index >= len(h.entries) {
		return domain.Vector{}, apperrors.NotFoundError("history entry").
			WithCause(domain.ErrHistoryIndex).
			WithField("index", index).
			WithField("entries", len(h.entries))
	}
	h.cursor = index
	return h.entries[index], nil
}

func (h *history) snapshot() []domain.Vector {
	return append([]domain.Vector(nil), h.entries...)
}
