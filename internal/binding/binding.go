// Package binding implements the reactive-fetch contract shared by every
// panel: a set of named parameters, a fetch function re-run whenever a bound
// parameter changes, and generation-based suppression of stale results.
//
// Reactivity is explicit. There is no property interception: callers mutate
// parameters through SetParam, which bumps the generation and hands back a
// Ticket describing the fetch to run. The caller runs the ticket
// asynchronously (a tea.Cmd in the TUI shell, a plain goroutine in tests) and
// feeds the settled result back through Apply, which refuses anything issued
// under an older generation.
package binding

import (
	"context"
	"reflect"
	"sync"
)

// Params is a snapshot of a binding's named parameters.
type Params map[string]any

// FetchFunc loads data for one parameter generation.
type FetchFunc func(ctx context.Context, params Params) (any, error)

// Ticket is one scheduled fetch, pinned to the generation that produced it.
type Ticket struct {
	generation uint64
	params     Params
	fetch      FetchFunc
}

// Generation returns the parameter generation this ticket was issued under.
func (t *Ticket) Generation() uint64 { return t.generation }

// Params returns the parameter snapshot captured at issue time.
func (t *Ticket) Params() Params { return t.params }

// Run executes the fetch with the captured parameters.
func (t *Ticket) Run(ctx context.Context) (any, error) {
	return t.fetch(ctx, t.params)
}

// Binding owns one panel's reactive parameters and current result. It is not
// shared between panels; all mutation happens on the update loop, but the
// bookkeeping is lock-protected so tickets may settle from other goroutines.
type Binding struct {
	mu         sync.Mutex
	fetch      FetchFunc
	required   []string
	params     Params
	generation uint64
	data       any
	err        error
	hasData    bool
}

// New creates a binding around fetch. required names parameters that must be
// non-empty before any fetch is issued; while one is missing the binding's
// result stays cleared (empty, not an error).
func New(fetch FetchFunc, required ...string) *Binding {
	return &Binding{fetch: fetch, required: required, params: Params{}}
}

// SetParam updates one parameter. If the value actually changed, the
// generation is bumped and a Ticket for the new generation is returned; the
// first assignment of a parameter always counts as a change. A nil return
// means no fetch is due: either the value was unchanged, or a required
// parameter is still empty (in which case the current result is cleared).
func (b *Binding) SetParam(name string, value any) *Ticket {
	b.mu.Lock()
	defer b.mu.Unlock()

	prev, seen := b.params[name]
	if seen && reflect.DeepEqual(prev, value) {
		return nil
	}
	b.params[name] = value
	b.generation++
	return b.issueLocked()
}

// Refresh schedules a re-fetch with the current parameters, ignoring any
// cached result. Used by the batch-save flow and the explicit refresh action.
func (b *Binding) Refresh() *Ticket {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.generation++
	return b.issueLocked()
}

// issueLocked returns a ticket for the current generation, or nil (clearing
// the result) when a required parameter is empty.
func (b *Binding) issueLocked() *Ticket {
	for _, name := range b.required {
		if isEmpty(b.params[name]) {
			b.data = nil
			b.err = nil
			b.hasData = false
			return nil
		}
	}
	snapshot := make(Params, len(b.params))
	for k, v := range b.params {
		snapshot[k] = v
	}
	return &Ticket{generation: b.generation, params: snapshot, fetch: b.fetch}
}

// Apply records a settled fetch. It reports false, leaving all state
// untouched, when the binding's generation has advanced past gen — the
// stale-result suppression that keeps a slow response from overwriting
// fresher data. On error the previous data is cleared explicitly so a
// stale-success-then-error view cannot occur.
func (b *Binding) Apply(gen uint64, data any, err error) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if gen != b.generation {
		return false
	}
	if err != nil {
		b.data = nil
		b.hasData = false
		b.err = err
		return true
	}
	b.data = data
	b.hasData = true
	b.err = nil
	return true
}

// Generation returns the current parameter generation.
func (b *Binding) Generation() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.generation
}

// Param returns the current value of a parameter (nil if unset).
func (b *Binding) Param(name string) any {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.params[name]
}

// Data returns the current result data and whether one is present.
func (b *Binding) Data() (any, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.data, b.hasData
}

// Err returns the current result error, if any.
func (b *Binding) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}

func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return s == ""
	}
	return false
}
