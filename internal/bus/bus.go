// Package bus implements the application-wide selection channel. Any panel
// can publish the currently selected boat and any panel can subscribe,
// regardless of where either sits in the view tree. Delivery is synchronous
// and ordered; a failing subscriber never blocks delivery to its siblings.
package bus

import (
	"log/slog"
	"sync"
)

// Selection is the single payload shape carried on the bus.
type Selection struct {
	BoatID string
}

// Handler receives published selections. Handlers run synchronously on the
// publisher's goroutine; a panicking handler is isolated and logged.
type Handler func(Selection)

// Token identifies a subscription for later release. The zero value is never
// a live subscription, so Unsubscribe(0) is always a no-op.
type Token int

type subscriber struct {
	token   Token
	handler Handler
}

// Bus is the process-scoped selection broadcast channel. Construct one with
// New and pass it by reference to every component that needs it; there is no
// hidden global instance.
type Bus struct {
	mu      sync.Mutex
	subs    []subscriber
	next    Token
	current Selection
	logger  *slog.Logger
}

// New creates an empty bus. logger may be nil.
func New(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{next: 1, logger: logger}
}

// Subscribe registers handler and returns its release token. Past publishes
// are not replayed; a late subscriber only sees future selections.
func (b *Bus) Subscribe(handler Handler) Token {
	b.mu.Lock()
	defer b.mu.Unlock()
	t := b.next
	b.next++
	b.subs = append(b.subs, subscriber{token: t, handler: handler})
	return t
}

// Unsubscribe releases a subscription. It is idempotent: unknown or
// already-released tokens are ignored.
func (b *Bus) Unsubscribe(t Token) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, s := range b.subs {
		if s.token == t {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

// Publish broadcasts sel to all current subscribers in subscription order and
// records it as the current selection (last publish wins). Each handler runs
// under its own recover so one failure cannot abort the fan-out.
func (b *Bus) Publish(sel Selection) {
	b.mu.Lock()
	b.current = sel
	subs := make([]subscriber, len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, s := range subs {
		b.deliver(s, sel)
	}
}

func (b *Bus) deliver(s subscriber, sel Selection) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("selection handler panicked", "token", int(s.token), "error", r)
		}
	}()
	s.handler(sel)
}

// Current returns the last published selection, or the zero Selection if
// nothing has been published yet.
func (b *Bus) Current() Selection {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

// SubscriberCount reports the number of live subscriptions.
func (b *Bus) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
