package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"boatdash/internal/bus"
	"boatdash/internal/model"
)

// MapView shows a single marker for the selected boat's mooring position. It
// subscribes to the selection bus at construction; before the first selection
// it renders an empty state.
type MapView struct {
	boatID   string
	boat     model.Boat
	haveBoat bool
	focused  bool
}

var _ View = (*MapView)(nil)

// NewMapView creates the map panel and subscribes it to the selection bus.
func NewMapView(b *bus.Bus) *MapView {
	v := &MapView{}
	b.Subscribe(func(sel bus.Selection) {
		v.boatID = sel.BoatID
		v.haveBoat = false
	})
	return v
}

// BoatID returns the selected boat, empty before any selection.
func (v *MapView) BoatID() string { return v.boatID }

// SetBoat records the loaded record whose position is shown.
func (v *MapView) SetBoat(boat model.Boat) {
	if boat.ID != v.boatID {
		return
	}
	v.boat = boat
	v.haveBoat = true
}

// SetFocused marks the panel as the focus target.
func (v *MapView) SetFocused(focused bool) { v.focused = focused }

// Init implements View.
func (v *MapView) Init() tea.Cmd { return nil }

// Update implements View.
func (v *MapView) Update(tea.Msg) (View, tea.Cmd) { return v, nil }

// View implements View.
func (v *MapView) View() string {
	var b strings.Builder
	titleStyle := Styles.Title
	if v.focused {
		titleStyle = Styles.TitleFocused
	}
	b.WriteString(titleStyle.Render("Boat Map") + "\n\n")

	if v.boatID == "" {
		b.WriteString(Styles.Empty.Render(LabelSelectABoat) + "\n")
		return b.String()
	}
	if !v.haveBoat {
		b.WriteString(Styles.Empty.Render("loading...") + "\n")
		return b.String()
	}

	b.WriteString(Styles.Normal.Render("⚓ "+v.boat.Name) + "\n")
	b.WriteString(Styles.Muted.Render(fmt.Sprintf("Coords: %v, %v",
		v.boat.Geolocation.Latitude, v.boat.Geolocation.Longitude)) + "\n")
	return b.String()
}
