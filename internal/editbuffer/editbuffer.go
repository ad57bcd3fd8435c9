// Package editbuffer accumulates inline table edits as drafts and commits
// them as a single batch write. Drafts are keyed by (row, field) with
// last-write-wins semantics; row order follows the first edit to each row so
// the batch request mirrors what the user touched.
package editbuffer

import (
	"sync"

	"boatdash/internal/model"
)

// Buffer holds the pending drafts for one editable table.
type Buffer struct {
	mu    sync.Mutex
	order []string
	rows  map[string]map[string]any
}

// NewBuffer creates an empty draft buffer.
func NewBuffer() *Buffer {
	return &Buffer{rows: make(map[string]map[string]any)}
}

// RecordEdit upserts one field edit. A second edit to the same (row, field)
// replaces the first. The draft is visible immediately through Drafts.
func (b *Buffer) RecordEdit(rowID, field string, value any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	row, ok := b.rows[rowID]
	if !ok {
		row = make(map[string]any)
		b.rows[rowID] = row
		b.order = append(b.order, rowID)
	}
	row[field] = value
}

// Drafts returns the current drafts as batch-update rows, in first-edit row
// order. The returned slices and maps are copies.
func (b *Buffer) Drafts() []model.RowChange {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.draftsLocked()
}

func (b *Buffer) draftsLocked() []model.RowChange {
	out := make([]model.RowChange, 0, len(b.order))
	for _, rowID := range b.order {
		fields := make(map[string]any, len(b.rows[rowID]))
		for k, v := range b.rows[rowID] {
			fields[k] = v
		}
		out = append(out, model.RowChange{RowID: rowID, Fields: fields})
	}
	return out
}

// Draft returns the draft value for one (row, field), if present. The table
// renderer uses this to overlay pending edits on fetched rows.
func (b *Buffer) Draft(rowID, field string) (any, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	row, ok := b.rows[rowID]
	if !ok {
		return nil, false
	}
	v, ok := row[field]
	return v, ok
}

// Len returns the number of rows with pending drafts.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.order)
}

// Empty reports whether no drafts are pending.
func (b *Buffer) Empty() bool { return b.Len() == 0 }

// take snapshots and clears the buffer in one step.
func (b *Buffer) take() []model.RowChange {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.draftsLocked()
	b.order = nil
	b.rows = make(map[string]map[string]any)
	return out
}
