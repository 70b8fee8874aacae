package feature

import "NetSentry/internal/model"

// History is a bounded FIFO of recent events backed by a ring buffer.
// Appending at capacity evicts the oldest entry. It is not safe for
// concurrent use; each processing loop owns its own History.
type History struct {
	events []*model.NetworkEvent
	head   int
	size   int
}

// NewHistory creates a History holding at most capacity events.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = 1
	}
	return &History{events: make([]*model.NetworkEvent, capacity)}
}

// Append adds an event, evicting the oldest when the buffer is full.
func (h *History) Append(event *model.NetworkEvent) {
	if h.size < len(h.events) {
		h.events[(h.head+h.size)%len(h.events)] = event
		h.size++
		return
	}
	h.events[h.head] = event
	h.head = (h.head + 1) % len(h.events)
}

// Len reports how many events are currently held.
func (h *History) Len() int {
	return h.size
}

// At returns the i-th held event, index 0 being the oldest.
func (h *History) At(i int) *model.NetworkEvent {
	return h.events[(h.head+i)%len(h.events)]
}
