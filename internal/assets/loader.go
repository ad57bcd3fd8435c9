// Package assets fetches third-party widget resources (styles, scripts) over
// HTTP. Each URL is fetched at most once per process; later loads are served
// from the cache, mirroring a platform resource loader.
package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// Loader fetches and caches remote assets.
type Loader struct {
	client *http.Client
	mu     sync.Mutex
	cache  map[string][]byte
}

// NewLoader creates a loader. client may be nil for a default with a
// 10-second timeout.
func NewLoader(client *http.Client) *Loader {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Loader{client: client, cache: make(map[string][]byte)}
}

// LoadStyle fetches a style resource.
func (l *Loader) LoadStyle(ctx context.Context, url string) error {
	_, err := l.load(ctx, url)
	return err
}

// LoadScript fetches a script resource.
func (l *Loader) LoadScript(ctx context.Context, url string) error {
	_, err := l.load(ctx, url)
	return err
}

// Content returns the cached bytes for url, if it has been loaded.
func (l *Loader) Content(url string) ([]byte, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.cache[url]
	return b, ok
}

func (l *Loader) load(ctx context.Context, url string) ([]byte, error) {
	l.mu.Lock()
	if b, ok := l.cache[url]; ok {
		l.mu.Unlock()
		return b, nil
	}
	l.mu.Unlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("load asset %s: %w", url, err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("load asset %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("load asset %s: unexpected status %d", url, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("load asset %s: %w", url, err)
	}

	l.mu.Lock()
	l.cache[url] = body
	l.mu.Unlock()
	return body, nil
}
