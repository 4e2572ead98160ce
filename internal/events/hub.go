package events

import (
	"context"
	"sync"

	"CarbonFootprintTracker/internal/logging"

	"github.com/google/uuid"
)

// Hub delivers record events to in-process subscribers of the same username.
// Slow subscribers lose events instead of blocking publishers.
type Hub struct {
	mu     sync.RWMutex
	subs   map[string]map[string]chan RecordEvent
	buffer int
}

func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = 16
	}
	return &Hub{
		subs:   make(map[string]map[string]chan RecordEvent),
		buffer: buffer,
	}
}

// Subscribe registers a listener for username. cancel must be called to release it.
func (h *Hub) Subscribe(username string) (<-chan RecordEvent, func()) {
	id := uuid.New().String()
	ch := make(chan RecordEvent, h.buffer)

	h.mu.Lock()
	if h.subs[username] == nil {
		h.subs[username] = make(map[string]chan RecordEvent)
	}
	h.subs[username][id] = ch
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs[username], id)
			if len(h.subs[username]) == 0 {
				delete(h.subs, username)
			}
			close(ch)
		})
	}
	return ch, cancel
}

func (h *Hub) Publish(_ context.Context, ev RecordEvent) error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for id, ch := range h.subs[ev.Username] {
		select {
		case ch <- ev:
		default:
			logging.Warn().Str("username", ev.Username).Str("subscriber", id).Msg("Hub.Publish(): subscriber buffer full, event dropped")
		}
	}
	return nil
}

// Subscribers returns the number of live subscriptions for username.
func (h *Hub) Subscribers(username string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[username])
}
