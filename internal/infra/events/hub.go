package events

import (
	"sync"

	domain "github.com/bryanwahyu/legal-doc-analyzer/internal/domain/analysis"
)

// DefaultBuffer is the per-subscriber queue length. Progress ticks are
// dropped for subscribers that fall this far behind.
const DefaultBuffer = 256

// Hub fans session events out to subscribers of that session.
type Hub struct {
	mu     sync.RWMutex
	subs   map[string]map[*Subscription]struct{}
	buffer int
}

var _ domain.Publisher = (*Hub)(nil)

// Subscription receives the events of one session until Close is called.
type Subscription struct {
	C         <-chan domain.Event
	ch        chan domain.Event
	sessionID string
	hub       *Hub
	once      sync.Once
}

func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Hub{subs: make(map[string]map[*Subscription]struct{}), buffer: buffer}
}

// Subscribe registers a listener for sessionID.
func (h *Hub) Subscribe(sessionID string) *Subscription {
	ch := make(chan domain.Event, h.buffer)
	sub := &Subscription{C: ch, ch: ch, sessionID: sessionID, hub: h}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[sessionID] == nil {
		h.subs[sessionID] = make(map[*Subscription]struct{})
	}
	h.subs[sessionID][sub] = struct{}{}
	return sub
}

// Close unregisters the subscription and closes its channel. Safe to call twice.
func (s *Subscription) Close() {
	s.once.Do(func() {
		h := s.hub
		h.mu.Lock()
		defer h.mu.Unlock()
		if set := h.subs[s.sessionID]; set != nil {
			delete(set, s)
			if len(set) == 0 {
				delete(h.subs, s.sessionID)
			}
		}
		close(s.ch)
	})
}

// Publish never blocks: a full subscriber queue drops the event for that subscriber.
func (h *Hub) Publish(e domain.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subs[e.SessionID] {
		select {
		case sub.ch <- e:
		default:
		}
	}
}

// Subscribers reports how many listeners a session has.
func (h *Hub) Subscribers(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[sessionID])
}
