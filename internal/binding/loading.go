package binding

import "sync"

// LoadingEvent is the lifecycle event pair a panel exposes around its
// fetches.
type LoadingEvent int

const (
	// EventLoading fires when a panel transitions idle -> loading.
	EventLoading LoadingEvent = iota
	// EventDoneLoading fires when all outstanding work has settled.
	EventDoneLoading
)

// LoadingCoordinator tracks one panel's loading flag as a counter of
// outstanding operations. Overlapping fetches share a single
// loading/doneloading pair: only the 0->1 transition emits EventLoading and
// only the 1->0 transition emits EventDoneLoading.
type LoadingCoordinator struct {
	mu          sync.Mutex
	outstanding int
	emit        func(LoadingEvent)
}

// NewLoadingCoordinator creates a coordinator that reports transitions
// through emit. emit may be nil for panels that only poll Loading().
func NewLoadingCoordinator(emit func(LoadingEvent)) *LoadingCoordinator {
	return &LoadingCoordinator{emit: emit}
}

// Begin marks one operation as started. The loading event fires only when the
// panel was previously idle.
func (l *LoadingCoordinator) Begin() {
	l.mu.Lock()
	l.outstanding++
	first := l.outstanding == 1
	l.mu.Unlock()
	if first && l.emit != nil {
		l.emit(EventLoading)
	}
}

// Settle marks one operation as finished (success, failure, or external
// refresh). The doneloading event fires exactly once, when the last
// outstanding operation settles. Settling while idle is ignored.
func (l *LoadingCoordinator) Settle() {
	l.mu.Lock()
	if l.outstanding == 0 {
		l.mu.Unlock()
		return
	}
	l.outstanding--
	last := l.outstanding == 0
	l.mu.Unlock()
	if last && l.emit != nil {
		l.emit(EventDoneLoading)
	}
}

// Loading reports whether any operation is outstanding.
func (l *LoadingCoordinator) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.outstanding > 0
}
