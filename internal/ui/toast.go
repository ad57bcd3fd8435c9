package ui

import (
	"sync"

	"boatdash/internal/notify"
)

// toastCollector is the notify.Notifier handed to the core components. Some
// of them notify from fetch goroutines, so the queue is lock-protected; the
// app drains it on the update loop and renders the result in the status bar.
type toastCollector struct {
	mu      sync.Mutex
	pending []notify.Notification
}

var _ notify.Notifier = (*toastCollector)(nil)

// Notify implements notify.Notifier.
func (c *toastCollector) Notify(n notify.Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = append(c.pending, n)
}

// Drain returns and clears the queued notifications.
func (c *toastCollector) Drain() []notify.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.pending
	c.pending = nil
	return out
}

// renderToast renders one notification for the status bar.
func renderToast(n notify.Notification) string {
	text := n.Title
	if n.Message != "" {
		text += ": " + n.Message
	}
	if n.Variant == notify.VariantError {
		return Styles.ToastError.Render(text)
	}
	return Styles.ToastSuccess.Render(text)
}
