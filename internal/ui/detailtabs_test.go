package ui

import (
	"log/slog"
	"strings"
	"testing"

	"boatdash/internal/bus"
	"boatdash/internal/model"
	"boatdash/internal/widget"
)

func testDetailTabs() (*DetailTabsView, *bus.Bus) {
	b := bus.New(slog.New(slog.DiscardHandler))
	bridge := widget.NewBridge(&fakeAssetLoader{}, "http://assets.test", nil)
	v := NewDetailTabsView(b, NewReviewsView(), NewAddReviewView(bridge))
	return v, b
}

func TestDetailTabs_PlaceholderBeforeSelection(t *testing.T) {
	v, _ := testDetailTabs()
	if got := v.View(); !strings.Contains(got, LabelSelectABoat) {
		t.Errorf("expected placeholder %q, got %q", LabelSelectABoat, got)
	}
}

func TestDetailTabs_BusSelectionSetsBoat(t *testing.T) {
	v, b := testDetailTabs()
	b.Publish(bus.Selection{BoatID: "boat-osprey"})

	if v.BoatID() != "boat-osprey" {
		t.Errorf("boatID = %q, want boat-osprey", v.BoatID())
	}
	if strings.Contains(v.View(), LabelSelectABoat) {
		t.Error("placeholder should disappear after a selection")
	}
}

func TestDetailTabs_TabCycling(t *testing.T) {
	v, b := testDetailTabs()
	b.Publish(bus.Selection{BoatID: "boat-osprey"})

	if v.ActiveTab() != TabDetails {
		t.Fatalf("initial tab = %q, want %q", v.ActiveTab(), TabDetails)
	}
	v.Update(keyMsg("]"))
	if v.ActiveTab() != TabReviews {
		t.Errorf("after ]: tab = %q, want %q", v.ActiveTab(), TabReviews)
	}
	v.Update(keyMsg("]"))
	if v.ActiveTab() != TabAddReview {
		t.Errorf("after ] ]: tab = %q, want %q", v.ActiveTab(), TabAddReview)
	}
	v.Update(keyMsg("]"))
	if v.ActiveTab() != TabDetails {
		t.Errorf("tab strip should wrap, got %q", v.ActiveTab())
	}
	v.Update(keyMsg("["))
	if v.ActiveTab() != TabAddReview {
		t.Errorf("after [: tab = %q, want %q", v.ActiveTab(), TabAddReview)
	}
}

func TestDetailTabs_AnchorIconOnlyWhenLoaded(t *testing.T) {
	v, b := testDetailTabs()
	b.Publish(bus.Selection{BoatID: "boat-osprey"})

	if icon := v.detailsTabIcon(); icon != "" {
		t.Errorf("icon before load = %q, want empty", icon)
	}
	v.SetBoat(model.Boat{ID: "boat-osprey", Name: "Osprey"}, nil)
	if icon := v.detailsTabIcon(); icon != detailsLoadedIcon {
		t.Errorf("icon after load = %q, want %q", icon, detailsLoadedIcon)
	}

	// A new selection clears the record until its load settles.
	b.Publish(bus.Selection{BoatID: "boat-heron"})
	if icon := v.detailsTabIcon(); icon != "" {
		t.Errorf("icon after reselection = %q, want empty", icon)
	}
}

func TestDetailTabs_ReviewCreatedActivatesReviewsTab(t *testing.T) {
	v, b := testDetailTabs()
	b.Publish(bus.Selection{BoatID: "boat-osprey"})

	v.Update(keyMsg("]"))
	v.Update(keyMsg("]")) // Add Review
	v.OnReviewCreated()
	if v.ActiveTab() != TabReviews {
		t.Errorf("tab after review created = %q, want %q", v.ActiveTab(), TabReviews)
	}
}

func TestDetailTabs_FullDetailsFromDetailsTab(t *testing.T) {
	v, b := testDetailTabs()
	b.Publish(bus.Selection{BoatID: "boat-osprey"})

	_, cmd := v.Update(keyMsg("f"))
	if cmd == nil {
		t.Fatal("f on details tab should navigate")
	}
	msg, ok := cmd().(ShowFullDetailMsg)
	if !ok {
		t.Fatalf("expected ShowFullDetailMsg, got %T", cmd())
	}
	if msg.BoatID != "boat-osprey" {
		t.Errorf("navigate boatID = %q, want boat-osprey", msg.BoatID)
	}
}

func TestAddReview_RatingKeysDriveBridge(t *testing.T) {
	bridge := widget.NewBridge(&fakeAssetLoader{}, "http://assets.test", nil)
	v := NewAddReviewView(bridge)
	v.SetBoat("boat-osprey")

	// Assets not loaded yet: rating keys are inert.
	v.field = fieldRating
	v.Update(keyMsg("4"))
	if v.rating != 0 {
		t.Errorf("rating before widget load = %d, want 0", v.rating)
	}

	if err := bridge.Load(t.Context()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := v.InitializeWidget(); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	v.Update(keyMsg("4"))
	if v.rating != 4 {
		t.Errorf("rating = %d, want 4", v.rating)
	}
	if bridge.Value() != 4 {
		t.Errorf("bridge value = %d, want 4", bridge.Value())
	}
}

func TestAddReview_SubmitRequiresSubject(t *testing.T) {
	bridge := widget.NewBridge(&fakeAssetLoader{}, "http://assets.test", nil)
	v := NewAddReviewView(bridge)
	v.SetBoat("boat-osprey")

	v.field = fieldRating
	_, cmd := v.Update(keyMsg("enter"))
	if cmd != nil {
		t.Error("submit without a subject should be rejected")
	}

	v.subject.SetValue("Great boat")
	_, cmd = v.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("submit with a subject should emit")
	}
	msg, ok := cmd().(SubmitReviewMsg)
	if !ok {
		t.Fatalf("expected SubmitReviewMsg, got %T", cmd())
	}
	if msg.Review.BoatID != "boat-osprey" || msg.Review.Name != "Great boat" {
		t.Errorf("unexpected review payload: %+v", msg.Review)
	}
}
