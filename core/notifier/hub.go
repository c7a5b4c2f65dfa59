package notifier

import (
	"sync"
	"time"
)

const (
	// defaultDismissAfter matches the console UI toast timeout.
	defaultDismissAfter = 5 * time.Second
	// subscriberBuffer bounds per-subscriber queues; a subscriber that
	// stops draining loses events rather than stalling publishers.
	subscriberBuffer = 16
)

// EventKind distinguishes a notification appearing from it timing out.
type EventKind int

const (
	// EventShown is emitted when a notification is published.
	EventShown EventKind = iota
	// EventDismissed is emitted once the dismiss interval elapses.
	EventDismissed
)

// Event pairs a notification with its lifecycle phase.
type Event struct {
	Kind         EventKind
	Notification Notification
}

// Hub fans notifications out to subscribers and schedules their dismissal.
// Delivery is non-blocking: the gateway must never wait on a UI.
type Hub struct {
	mu           sync.Mutex
	subs         map[chan Event]struct{}
	dismissAfter time.Duration
	closed       bool
}

var _ Notifier = (*Hub)(nil)

// HubOption configures a Hub.
type HubOption func(*Hub)

// WithDismissAfter overrides the auto-dismiss interval.
func WithDismissAfter(d time.Duration) HubOption {
	return func(h *Hub) {
		if d > 0 {
			h.dismissAfter = d
		}
	}
}

// NewHub creates a notification hub with the default 5s dismiss interval.
func NewHub(opts ...HubOption) *Hub {
	h := &Hub{
		subs:         make(map[chan Event]struct{}),
		dismissAfter: defaultDismissAfter,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Subscribe registers a new event channel. The returned function removes
// the subscription and closes the channel; it is safe to call more than
// once.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			h.mu.Lock()
			if _, ok := h.subs[ch]; ok {
				delete(h.subs, ch)
				close(ch)
			}
			h.mu.Unlock()
		})
	}
	return ch, unsubscribe
}

// Notify implements Notifier. The notification is broadcast immediately and
// its dismissal is scheduled.
func (h *Hub) Notify(message string, severity Severity) {
	n := newNotification(message, severity)

	h.broadcast(Event{Kind: EventShown, Notification: n})
	time.AfterFunc(h.dismissAfter, func() {
		h.broadcast(Event{Kind: EventDismissed, Notification: n})
	})
}

// Close removes all subscribers and closes their channels. Notifications
// published after Close are dropped.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for ch := range h.subs {
		close(ch)
	}
	h.subs = nil
}

func (h *Hub) broadcast(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	for ch := range h.subs {
		select {
		case ch <- ev:
		default:
			// Subscriber queue full; drop rather than block.
		}
	}
}
