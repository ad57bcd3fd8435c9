// Package notify defines the fire-and-forget notification contract panels use
// to surface toasts. The TUI shell renders them; tests capture them.
package notify

// Variant selects the toast styling.
type Variant string

const (
	VariantSuccess Variant = "success"
	VariantError   Variant = "error"
)

// Notification is one user-visible toast.
type Notification struct {
	Title   string
	Message string
	Variant Variant
}

// Notifier receives notifications. Implementations must be lightweight and
// must not panic; no return value is consumed.
type Notifier interface {
	Notify(Notification)
}

// Func adapts a plain function to the Notifier interface.
type Func func(Notification)

// Notify implements Notifier.
func (f Func) Notify(n Notification) { f(n) }

// Discard drops all notifications.
var Discard Notifier = Func(func(Notification) {})
