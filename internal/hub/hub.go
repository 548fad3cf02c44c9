package hub

import (
	"github.com/google/uuid"

	"github.com/memgame/memory-backend/internal/events"
)

// subBuffer bounds each subscription channel. Sends are non-blocking, so a
// subscriber that falls this far behind starts losing events; it recovers by
// reconnecting and reading the InitState snapshot.
const subBuffer = 16

type subscription struct {
	id uuid.UUID
	ch chan events.Event
}

// Hub fans events out to the subscribed players of one session. It holds at
// most one live subscription per token. The hub does no locking of its own:
// every call is made while the caller holds the session store's lock, which
// is safe exactly because sends never block.
type Hub struct {
	subs map[string]subscription
}

func New() *Hub {
	return &Hub{subs: make(map[string]subscription)}
}

// Attach registers a fresh subscription for token, replacing (and closing)
// any prior one so at most one live stream per player is authoritative.
// The returned id is needed to detach later: a stale connection that
// outlived its replacement must not tear down the new stream.
func (h *Hub) Attach(token string) (<-chan events.Event, uuid.UUID) {
	if prev, ok := h.subs[token]; ok {
		close(prev.ch)
	}
	sub := subscription{id: uuid.New(), ch: make(chan events.Event, subBuffer)}
	h.subs[token] = sub
	return sub.ch, sub.id
}

// Detach closes and removes token's subscription, but only if id still owns
// it. A detach from a connection that was already replaced is a no-op.
func (h *Hub) Detach(token string, id uuid.UUID) {
	sub, ok := h.subs[token]
	if !ok || sub.id != id {
		return
	}
	close(sub.ch)
	delete(h.subs, token)
}

// DetachAll drops every subscription, closing the channels so subscriber
// goroutines unwind. Used when the session is deleted.
func (h *Hub) DetachAll() {
	for token, sub := range h.subs {
		close(sub.ch)
		delete(h.subs, token)
	}
}

// Broadcast delivers ev to every current subscriber. Full channels drop the
// event rather than block; players without a stream are skipped entirely.
func (h *Hub) Broadcast(ev events.Event) {
	for _, sub := range h.subs {
		select {
		case sub.ch <- ev:
		default:
			// Subscriber is backed up; it will resync from InitState.
		}
	}
}

// SendTo delivers ev to one player's subscription, if any. Never blocks,
// never fails: an absent or full target just loses the event.
func (h *Hub) SendTo(token string, ev events.Event) {
	sub, ok := h.subs[token]
	if !ok {
		return
	}
	select {
	case sub.ch <- ev:
	default:
	}
}
