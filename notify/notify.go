// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/danielhkuo/votecast/models"
)

// Event is one state-change notification. Vote is the affected record
// at time of emission; it is nil for votesReset.
type Event struct {
	Kind string       `json:"kind"`
	Vote *models.Vote `json:"payload,omitempty"`
}

// Subscription is a live receiver handle. C is closed when the
// subscriber is unsubscribed or dropped.
type Subscription struct {
	ID string
	C  <-chan Event

	ch chan Event
}

// Broadcaster fans state-change events out to every registered
// subscriber. Delivery is best-effort and at-most-once: there is no
// replay, and a subscriber that cannot keep up is dropped rather than
// allowed to block the rest.
type Broadcaster struct {
	mu   sync.RWMutex
	subs map[string]*Subscription
}

// subscriberBuffer is how many undelivered events a subscriber may
// accumulate before it is considered dead and dropped.
const subscriberBuffer = 16

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[string]*Subscription)}
}

// Subscribe registers a new receiver and returns its handle.
func (b *Broadcaster) Subscribe() *Subscription {
	ch := make(chan Event, subscriberBuffer)
	sub := &Subscription{ID: uuid.NewString(), C: ch, ch: ch}

	b.mu.Lock()
	b.subs[sub.ID] = sub
	b.mu.Unlock()

	slog.Info("subscriber registered", "subscriber_id", sub.ID)
	return sub
}

// Unsubscribe removes a receiver and closes its channel. Safe to call
// on an already-removed handle.
func (b *Broadcaster) Unsubscribe(id string) {
	b.mu.Lock()
	sub, ok := b.subs[id]
	if ok {
		delete(b.subs, id)
		close(sub.ch)
	}
	b.mu.Unlock()

	if ok {
		slog.Info("subscriber removed", "subscriber_id", id)
	}
}

// Publish delivers the event to every currently-registered subscriber.
// A subscriber whose buffer is full is dropped on this publish attempt
// instead of blocking the others. Each subscriber sees its own events
// in emission order; no ordering is defined across subscribers.
func (b *Broadcaster) Publish(event Event) {
	b.mu.Lock()
	for id, sub := range b.subs {
		select {
		case sub.ch <- event:
		default:
			delete(b.subs, id)
			close(sub.ch)
			slog.Warn("dropping slow subscriber", "subscriber_id", id, "kind", event.Kind)
		}
	}
	b.mu.Unlock()

	slog.Info("event published", "kind", event.Kind)
}

// Count returns the current number of subscribers.
func (b *Broadcaster) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
