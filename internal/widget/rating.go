// Package widget bridges the third-party five-star rating control into the
// dashboard. The control's style and script assets are loaded once, in
// parallel, on first render; after a successful load the widget is
// initialized with a current value, a fixed maximum of five stars, a change
// callback, and a read-only flag. Its native callback is normalized into the
// RatingChange event.
package widget

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"boatdash/internal/notify"
)

const (
	// MaxRating is the fixed scale of the five-star control.
	MaxRating = 5

	// ErrorTitle heads the toast shown when the widget assets fail to load.
	ErrorTitle = "Error loading five-star"

	// EditableClass and ReadOnlyClass are the control's rendering classes.
	EditableClass = "c-rating"
	ReadOnlyClass = "readonly c-rating"

	// StyleAsset and ScriptAsset are the resource names under the fivestar
	// base URL.
	StyleAsset  = "rating.css"
	ScriptAsset = "rating.js"
)

// RatingChange is the normalized change event the widget feeds back into the
// system.
type RatingChange struct {
	Rating int
}

// AssetLoader loads the widget's remote resources.
type AssetLoader interface {
	LoadStyle(ctx context.Context, url string) error
	LoadScript(ctx context.Context, url string) error
}

// ErrNotLoaded reports use of the widget before its assets loaded.
var ErrNotLoaded = errors.New("rating widget assets not loaded")

// Bridge manages one rating control instance.
type Bridge struct {
	mu       sync.Mutex
	loader   AssetLoader
	baseURL  string
	notifier notify.Notifier

	rendered    bool
	loaded      bool
	initialized bool
	value       int
	readOnly    bool
	onChange    func(RatingChange)
}

// NewBridge creates a bridge for the fivestar assets under baseURL.
func NewBridge(loader AssetLoader, baseURL string, notifier notify.Notifier) *Bridge {
	if notifier == nil {
		notifier = notify.Discard
	}
	return &Bridge{loader: loader, baseURL: baseURL, notifier: notifier}
}

// ShouldLoad reports whether the assets should be loaded now. True exactly
// once per bridge lifetime: the load is attempted on first render only, with
// no retry on failure.
func (b *Bridge) ShouldLoad() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.rendered {
		return false
	}
	b.rendered = true
	return true
}

// Load fetches the style and script resources in parallel; both must succeed
// before initialization may proceed. On failure an error toast is raised and
// the widget stays uninitialized.
func (b *Bridge) Load(ctx context.Context) error {
	var wg sync.WaitGroup
	var styleErr, scriptErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		styleErr = b.loader.LoadStyle(ctx, b.baseURL+"/"+StyleAsset)
	}()
	go func() {
		defer wg.Done()
		scriptErr = b.loader.LoadScript(ctx, b.baseURL+"/"+ScriptAsset)
	}()
	wg.Wait()

	err := styleErr
	if err == nil {
		err = scriptErr
	}
	if err != nil {
		b.notifier.Notify(notify.Notification{
			Title:   ErrorTitle,
			Message: err.Error(),
			Variant: notify.VariantError,
		})
		return err
	}

	b.mu.Lock()
	b.loaded = true
	b.mu.Unlock()
	return nil
}

// Initialize binds the loaded control to a current value, a change callback,
// and a read-only flag. The maximum scale is always MaxRating.
func (b *Bridge) Initialize(value int, readOnly bool, onChange func(RatingChange)) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.loaded {
		return ErrNotLoaded
	}
	b.value = value
	b.readOnly = readOnly
	b.onChange = onChange
	b.initialized = true
	return nil
}

// Select is the control's native selection callback. It records the edited
// value and fires the normalized RatingChange event. Out-of-scale and
// read-only selections are ignored.
func (b *Bridge) Select(rating int) error {
	b.mu.Lock()
	if !b.initialized {
		b.mu.Unlock()
		return ErrNotLoaded
	}
	if b.readOnly {
		b.mu.Unlock()
		return nil
	}
	if rating < 1 || rating > MaxRating {
		b.mu.Unlock()
		return fmt.Errorf("rating %d outside 1..%d", rating, MaxRating)
	}
	b.value = rating
	onChange := b.onChange
	b.mu.Unlock()

	if onChange != nil {
		onChange(RatingChange{Rating: rating})
	}
	return nil
}

// Value returns the control's current value.
func (b *Bridge) Value() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.value
}

// Class returns the control's rendering class for its current mode.
func (b *Bridge) Class() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.readOnly {
		return ReadOnlyClass
	}
	return EditableClass
}

// Initialized reports whether the control is ready for selections.
func (b *Bridge) Initialized() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.initialized
}
