package editbuffer

import (
	"sync"

	"boatdash/internal/binding"
	"boatdash/internal/model"
	"boatdash/internal/notify"
)

// Toast text for batch-save outcomes.
const (
	SuccessTitle  = "Success"
	MessageShipIt = "Ship it!"
	ErrorTitle    = "Error"
)

// Commit is one in-flight batch save: the drafts snapshotted at commit time.
type Commit struct {
	changes []model.RowChange
}

// Changes returns the rows included in this commit.
func (c *Commit) Changes() []model.RowChange { return c.changes }

// Flow drives the batch-save cycle for one editable table:
// empty -> pending -> committing -> empty. Committing moves the drafts out of
// the buffer, so edits arriving mid-commit accumulate into the next cycle's
// buffer instead of being lost. Drafts from the committed snapshot are
// discarded on success and on failure alike; failed commits surface an error
// toast but no retry path.
type Flow struct {
	mu         sync.Mutex
	buf        *Buffer
	loading    *binding.LoadingCoordinator
	notifier   notify.Notifier
	committing bool
}

// NewFlow wires a save flow around buf. notifier may be notify.Discard.
func NewFlow(buf *Buffer, loading *binding.LoadingCoordinator, notifier notify.Notifier) *Flow {
	if notifier == nil {
		notifier = notify.Discard
	}
	return &Flow{buf: buf, loading: loading, notifier: notifier}
}

// Buffer returns the live draft buffer. During a commit this is already the
// next cycle's buffer.
func (f *Flow) Buffer() *Buffer { return f.buf }

// Committing reports whether a batch save is in flight.
func (f *Flow) Committing() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.committing
}

// Commit starts a batch save. It returns nil without any side effect when the
// buffer is empty or a commit is already in flight; otherwise it snapshots
// and clears the buffer, marks the flow committing, raises the loading flag,
// and returns the commit for the caller to execute asynchronously.
func (f *Flow) Commit() *Commit {
	f.mu.Lock()
	if f.committing {
		f.mu.Unlock()
		return nil
	}
	changes := f.buf.take()
	if len(changes) == 0 {
		f.mu.Unlock()
		return nil
	}
	f.committing = true
	f.mu.Unlock()

	f.loading.Begin()
	return &Commit{changes: changes}
}

// Settle records the outcome of the in-flight commit. It lowers the loading
// flag exactly once, emits exactly one toast, and reports whether the owning
// panel should refresh its data (success only). Settling with no commit in
// flight is a no-op.
func (f *Flow) Settle(err error) (refresh bool) {
	f.mu.Lock()
	if !f.committing {
		f.mu.Unlock()
		return false
	}
	f.committing = false
	f.mu.Unlock()

	f.loading.Settle()
	if err != nil {
		f.notifier.Notify(notify.Notification{
			Title:   ErrorTitle,
			Message: err.Error(),
			Variant: notify.VariantError,
		})
		return false
	}
	f.notifier.Notify(notify.Notification{
		Title:   SuccessTitle,
		Message: MessageShipIt,
		Variant: notify.VariantSuccess,
	})
	return true
}
