package activity

import (
	"log/slog"
	"sync"

	"github.com/ecoideias/ecoideias-backend/internal/domain"
)

const subscriberBuffer = 4

// Subscriber receives full activity snapshots.
type Subscriber struct {
	C chan []domain.ActivityEntry
}

// Hub fans activity snapshots out to stream subscribers.
type Hub struct {
	mu     sync.RWMutex
	subs   map[*Subscriber]struct{}
	closed bool
	log    *slog.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		subs: make(map[*Subscriber]struct{}),
		log:  logger.With("component", "activity_hub"),
	}
}

// Subscribe registers a new subscriber. After Close the returned
// subscriber's channel is already closed.
func (h *Hub) Subscribe() *Subscriber {
	sub := &Subscriber{C: make(chan []domain.ActivityEntry, subscriberBuffer)}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		close(sub.C)
		return sub
	}
	h.subs[sub] = struct{}{}
	n := len(h.subs)
	h.mu.Unlock()

	h.log.Debug("activity subscriber added", slog.Int("subscribers", n))
	return sub
}

// Unsubscribe removes sub and closes its channel. Safe to call twice.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subs[sub]; !ok {
		return
	}
	delete(h.subs, sub)
	close(sub.C)
	h.log.Debug("activity subscriber removed", slog.Int("subscribers", len(h.subs)))
}

// Close ends every subscription so open streams return. Used on server
// shutdown; later subscribers are closed immediately.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	n := len(h.subs)
	for sub := range h.subs {
		close(sub.C)
	}
	clear(h.subs)
	h.log.Info("activity streams closed", slog.Int("subscribers", n))
}

// Len returns the number of active subscribers.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Broadcast delivers entries to every subscriber, dropping for slow ones.
func (h *Hub) Broadcast(entries []domain.ActivityEntry) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subs {
		select {
		case sub.C <- entries:
		default:
			h.log.Warn("dropping activity snapshot; subscriber buffer full")
		}
	}
}
