package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"boatdash/internal/bus"
	"boatdash/internal/model"
)

// Tab labels and the placeholder shown before any boat is selected.
const (
	TabDetails   = "Details"
	TabReviews   = "Reviews"
	TabAddReview = "Add Review"

	LabelFullDetails  = "Full Details"
	LabelSelectABoat  = "Please select a boat"
	detailsLoadedIcon = "utility:anchor"
)

// detailTab indexes the tab strip.
type detailTab int

const (
	tabDetails detailTab = iota
	tabReviews
	tabAddReview
)

// DetailTabsView shows the selected boat across three tabs. It subscribes to
// the selection bus at construction and keeps showing a placeholder until the
// first selection arrives.
type DetailTabsView struct {
	boatID   string
	boat     model.Boat
	haveBoat bool
	loadErr  error

	active    detailTab
	reviews   *ReviewsView
	addReview *AddReviewView
}

var _ View = (*DetailTabsView)(nil)

// NewDetailTabsView creates the detail panel and subscribes it to the
// selection bus. The subscription lives as long as the process.
func NewDetailTabsView(b *bus.Bus, reviews *ReviewsView, addReview *AddReviewView) *DetailTabsView {
	v := &DetailTabsView{reviews: reviews, addReview: addReview}
	b.Subscribe(func(sel bus.Selection) {
		v.boatID = sel.BoatID
		v.haveBoat = false
		v.loadErr = nil
		v.addReview.SetBoat(sel.BoatID)
	})
	return v
}

// BoatID returns the currently selected boat, empty before any selection.
func (v *DetailTabsView) BoatID() string { return v.boatID }

// SetBoat records the loaded record backing the Details tab.
func (v *DetailTabsView) SetBoat(boat model.Boat, err error) {
	if err != nil {
		v.haveBoat = false
		v.loadErr = err
		return
	}
	v.boat = boat
	v.haveBoat = true
	v.loadErr = nil
}

// OnReviewCreated activates the Reviews tab after a successful submission.
func (v *DetailTabsView) OnReviewCreated() {
	v.active = tabReviews
}

// ActiveTab returns the active tab's label.
func (v *DetailTabsView) ActiveTab() string {
	switch v.active {
	case tabReviews:
		return TabReviews
	case tabAddReview:
		return TabAddReview
	}
	return TabDetails
}

// Init implements View.
func (v *DetailTabsView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *DetailTabsView) Update(msg tea.Msg) (View, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "]":
			v.active = (v.active + 1) % 3
			return v, nil
		case "[":
			v.active--
			if v.active < 0 {
				v.active = tabAddReview
			}
			return v, nil
		case "f":
			if v.active == tabDetails && v.boatID != "" {
				id := v.boatID
				return v, func() tea.Msg { return ShowFullDetailMsg{BoatID: id} }
			}
		}
	}

	switch v.active {
	case tabReviews:
		child, cmd := v.reviews.Update(msg)
		v.reviews = child.(*ReviewsView)
		return v, cmd
	case tabAddReview:
		child, cmd := v.addReview.Update(msg)
		v.addReview = child.(*AddReviewView)
		return v, cmd
	}
	return v, nil
}

// View implements View.
func (v *DetailTabsView) View() string {
	if v.boatID == "" {
		return Styles.Empty.Render(LabelSelectABoat)
	}

	var b strings.Builder
	b.WriteString(v.tabStrip() + "\n\n")

	switch v.active {
	case tabDetails:
		b.WriteString(v.detailsTab())
	case tabReviews:
		b.WriteString(v.reviews.View())
	case tabAddReview:
		b.WriteString(v.addReview.View())
	}
	return b.String()
}

func (v *DetailTabsView) tabStrip() string {
	labels := []string{TabDetails, TabReviews, TabAddReview}
	parts := make([]string, len(labels))
	for i, label := range labels {
		if detailTab(i) == v.active {
			parts[i] = Styles.TitleFocused.Render("[" + label + "]")
		} else {
			parts[i] = Styles.Muted.Render(" " + label + " ")
		}
	}
	return strings.Join(parts, " ")
}

// detailsTabIcon mirrors the record-loaded indicator: the anchor shows only
// once the record wire has data.
func (v *DetailTabsView) detailsTabIcon() string {
	if v.haveBoat {
		return detailsLoadedIcon
	}
	return ""
}

func (v *DetailTabsView) detailsTab() string {
	var b strings.Builder
	if v.loadErr != nil {
		b.WriteString(Styles.Empty.Render("could not load boat") + "\n")
		return b.String()
	}
	if !v.haveBoat {
		b.WriteString(Styles.Empty.Render("loading...") + "\n")
		return b.String()
	}

	if icon := v.detailsTabIcon(); icon != "" {
		b.WriteString(Styles.Muted.Render(icon) + "  ")
	}
	b.WriteString(Styles.Title.Render(v.boat.Name) + "\n\n")
	b.WriteString(Styles.Muted.Render("Type:        ") + Styles.Normal.Render(v.boat.TypeName) + "\n")
	b.WriteString(Styles.Muted.Render("Length:      ") + Styles.Normal.Render(fmt.Sprintf("%v ft", v.boat.Length)) + "\n")
	b.WriteString(Styles.Muted.Render("Price:       ") + Styles.Normal.Render(fmt.Sprintf("$%.0f", v.boat.Price)) + "\n")
	b.WriteString(Styles.Muted.Render("Description: ") + Styles.Normal.Render(v.boat.Description) + "\n")
	b.WriteString("\n" + Styles.Hint.Render("f: "+LabelFullDetails))
	return b.String()
}
