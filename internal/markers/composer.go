// Package markers composes the boats-near-me marker list from two
// independently settling phases: a one-shot viewer-location read and a
// reactive proximity query. Composition is suppressed until both phases have
// produced a value at least once, so the resolution order of the two phases
// cannot change the result.
package markers

import (
	"fmt"
	"sync"

	"boatdash/internal/model"
)

// Marker texture for the map layer.
const (
	LabelYouAreHere = "You are here!"
	IconSelf        = "utility:resource_territory"
	IconBoat        = "utility:anchor"
)

// Marker is one point-of-interest entry: a geocoordinate plus display
// metadata.
type Marker struct {
	Title       string
	Location    model.Coordinates
	Icon        string
	Description string
}

// Composer owns one panel's marker list. The viewer's own marker is always
// index 0; boat markers follow in query-result order, never re-sorted.
type Composer struct {
	mu        sync.Mutex
	rendered  bool
	self      model.Coordinates
	haveSelf  bool
	boats     []model.Boat
	haveBoats bool
	markers   []Marker
}

// NewComposer creates a composer with no phase settled.
func NewComposer() *Composer { return &Composer{} }

// ShouldAcquire reports whether the viewer location should be requested now.
// It returns true exactly once per composer lifetime; repeated render cycles
// after the first get false, so the host environment is asked only once.
func (c *Composer) ShouldAcquire() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.rendered {
		return false
	}
	c.rendered = true
	return true
}

// SetSelfLocation records the acquired viewer position and recomposes if a
// query result already arrived.
func (c *Composer) SetSelfLocation(coords model.Coordinates) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.self = coords
	c.haveSelf = true
	c.composeLocked()
}

// ApplyBoats records a successful proximity query result and recomposes if
// the viewer position is already known. A query error must NOT be routed
// here: on error the previously composed markers stay visible.
func (c *Composer) ApplyBoats(boats []model.Boat) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.boats = boats
	c.haveBoats = true
	c.composeLocked()
}

func (c *Composer) composeLocked() {
	if !c.haveSelf || !c.haveBoats {
		return
	}
	out := make([]Marker, 0, len(c.boats)+1)
	out = append(out, Marker{
		Title:    LabelYouAreHere,
		Icon:     IconSelf,
		Location: c.self,
	})
	for _, b := range c.boats {
		out = append(out, Marker{
			Title:       b.Name,
			Icon:        IconBoat,
			Location:    b.Geolocation,
			Description: fmt.Sprintf("Coords: %v, %v", b.Geolocation.Latitude, b.Geolocation.Longitude),
		})
	}
	c.markers = out
}

// Markers returns the composed list (nil until both phases settled once).
func (c *Composer) Markers() []Marker {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.markers
}

// SelfLocation returns the acquired viewer position, if any.
func (c *Composer) SelfLocation() (model.Coordinates, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.self, c.haveSelf
}
