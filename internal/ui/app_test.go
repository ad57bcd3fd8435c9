package ui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"boatdash/internal/dataservice"
	"boatdash/internal/geo"
	"boatdash/internal/model"
	"boatdash/internal/store"
)

// fakeAssetLoader records asset URLs and optionally fails every load.
type fakeAssetLoader struct {
	mu     sync.Mutex
	styles []string
	js     []string
	fail   bool
}

func (f *fakeAssetLoader) LoadStyle(ctx context.Context, url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("404")
	}
	f.styles = append(f.styles, url)
	return nil
}

func (f *fakeAssetLoader) LoadScript(ctx context.Context, url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("404")
	}
	f.js = append(f.js, url)
	return nil
}

func newTestApp(t *testing.T, src geo.Source) *appModelAdapter {
	t.Helper()
	toastDuration = time.Millisecond

	db, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := store.RunMigrations(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := store.SeedDefaults(context.Background(), db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	svc := dataservice.New(store.NewBoatRepo(db), store.NewReviewRepo(db), nil, nil)
	m := NewAppModel(AppConfig{
		Service:      svc,
		Geo:          src,
		AssetLoader:  &fakeAssetLoader{},
		AssetBaseURL: "http://assets.test/fivestar",
	})
	return &appModelAdapter{AppModel: m}
}

func testGeo() geo.Source {
	return geo.Static{Coords: model.Coordinates{Latitude: 37.79, Longitude: -122.43}, Set: true}
}

// msgsFrom executes a command tree and returns every produced message.
func msgsFrom(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, msgsFrom(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// feed runs a command tree and pumps only messages of interest back into the
// model, returning the commands those updates produced.
func feed(a *appModelAdapter, cmd tea.Cmd, keep func(tea.Msg) bool) []tea.Cmd {
	var out []tea.Cmd
	for _, msg := range msgsFrom(cmd) {
		if keep != nil && !keep(msg) {
			continue
		}
		_, next := a.Update(msg)
		out = append(out, next)
	}
	return out
}

// loadMsgs keeps settled-fetch messages and drops animation ticks.
func loadMsgs(msg tea.Msg) bool {
	switch msg.(type) {
	case BoatTypesLoadedMsg, BoatsLoadedMsg, BoatLoadedMsg, ReviewsLoadedMsg,
		SimilarLoadedMsg, NearbyLoadedMsg, LocationAcquiredMsg,
		WidgetAssetsLoadedMsg, SaveSettledMsg, ReviewCreatedMsg,
		SelectBoatMsg, SubmitReviewMsg, TypeFilterChangedMsg,
		SimilarCriterionChangedMsg, ShowFullDetailMsg:
		return true
	}
	return false
}

// initApp pumps Init's fetches through the model so the dashboard is
// populated.
func initApp(t *testing.T, a *appModelAdapter) {
	t.Helper()
	next := feed(a, a.Init(), loadMsgs)
	for _, cmd := range next {
		feed(a, cmd, loadMsgs)
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestApp_InitPopulatesDashboard(t *testing.T) {
	a := newTestApp(t, testGeo())
	initApp(t, a)

	if got := len(a.Search.Boats); got != 7 {
		t.Errorf("expected 7 boats after init, got %d", got)
	}
	if got := len(a.Search.Types); got != 5 {
		t.Errorf("expected 5 boat types, got %d", got)
	}
	if a.Search.loading {
		t.Error("search should not be loading after all fetches settled")
	}
}

func TestApp_NearbyMarkersComposeWithSelfFirst(t *testing.T) {
	a := newTestApp(t, testGeo())
	initApp(t, a)

	ms := a.composer.Markers()
	if len(ms) == 0 {
		t.Fatal("expected composed markers after init")
	}
	if ms[0].Title != "You are here!" {
		t.Errorf("expected self marker first, got %q", ms[0].Title)
	}
	if len(ms) > 11 {
		t.Errorf("expected at most 10 boat markers, got %d", len(ms)-1)
	}
	for _, m := range ms[1:] {
		if !strings.HasPrefix(m.Description, "Coords: ") {
			t.Errorf("boat marker description %q missing coords", m.Description)
		}
	}
}

func TestApp_GeoUnavailableDegradesSilently(t *testing.T) {
	a := newTestApp(t, geo.Static{}) // unset source always refuses
	initApp(t, a)

	if a.toast != nil {
		t.Errorf("geolocation refusal must not raise a toast, got %v", *a.toast)
	}
	if !a.Nearby.noGeo {
		t.Error("nearby panel should record the missing location")
	}
	if got := a.composer.Markers(); got != nil {
		t.Errorf("no markers should compose without a viewer position, got %d", len(got))
	}
}

func TestApp_SelectionFansOutToDetailPanels(t *testing.T) {
	a := newTestApp(t, testGeo())
	initApp(t, a)

	_, cmd := a.Update(keyMsg("enter")) // search panel has focus initially
	next := feed(a, cmd, loadMsgs)
	for _, c := range next {
		feed(a, c, loadMsgs)
	}

	want := a.Search.Boats[0].ID
	if a.Detail.BoatID() != want {
		t.Errorf("detail boatID = %q, want %q", a.Detail.BoatID(), want)
	}
	if a.Map.BoatID() != want {
		t.Errorf("map boatID = %q, want %q", a.Map.BoatID(), want)
	}
	if !a.Detail.haveBoat {
		t.Error("detail should have the loaded record")
	}
	if !a.Similar.hasBoat {
		t.Error("similar panel should know a boat is selected")
	}
	if cur := a.bus.Current(); cur.BoatID != want {
		t.Errorf("bus current = %q, want %q", cur.BoatID, want)
	}
}

func TestApp_StaleSearchResultDiscarded(t *testing.T) {
	a := newTestApp(t, testGeo())
	initApp(t, a)

	// Issue two filter changes back to back and capture the fetches.
	_, cmd1 := a.Update(TypeFilterChangedMsg{TypeID: "type-fishing"})
	_, cmd2 := a.Update(TypeFilterChangedMsg{TypeID: ""})

	var slow, fresh tea.Msg
	for _, msg := range msgsFrom(cmd1) {
		if m, ok := msg.(BoatsLoadedMsg); ok {
			slow = m
		}
	}
	for _, msg := range msgsFrom(cmd2) {
		if m, ok := msg.(BoatsLoadedMsg); ok {
			fresh = m
		}
	}

	// The newer result lands first; the older one must be dropped.
	a.Update(fresh)
	a.Update(slow)

	if got := len(a.Search.Boats); got != 7 {
		t.Errorf("stale filtered result overwrote fresh data: %d boats", got)
	}
}

func TestApp_BatchSaveSuccessClearsDraftsAndToasts(t *testing.T) {
	a := newTestApp(t, testGeo())
	initApp(t, a)

	boat := a.Search.Boats[0]
	a.flow.Buffer().RecordEdit(boat.ID, "price", 99000.0)

	_, cmd := a.Update(keyMsg("ctrl+s"))
	next := feed(a, cmd, loadMsgs)

	if !a.flow.Buffer().Empty() {
		t.Error("drafts should be cleared once the commit is in flight")
	}
	if a.toast == nil || a.toast.Title != "Success" || a.toast.Message != "Ship it!" {
		t.Errorf("expected Success/Ship it! toast, got %v", a.toast)
	}

	// The refresh lands the written value.
	for _, c := range next {
		feed(a, c, loadMsgs)
	}
	if got := a.Search.Boats[0].Price; got != 99000.0 {
		t.Errorf("refreshed price = %v, want 99000", got)
	}
}

func TestApp_BatchSaveFailureKeepsNoDrafts(t *testing.T) {
	a := newTestApp(t, testGeo())
	initApp(t, a)

	a.flow.Buffer().RecordEdit("boat-missing", "price", 1.0)
	_, cmd := a.Update(keyMsg("ctrl+s"))
	feed(a, cmd, loadMsgs)

	if !a.flow.Buffer().Empty() {
		t.Error("failed commit must still discard its drafts")
	}
	if a.toast == nil || a.toast.Title != "Error" {
		t.Errorf("expected Error toast, got %v", a.toast)
	}
}

func TestApp_EmptyCommitIsNoOp(t *testing.T) {
	a := newTestApp(t, testGeo())
	initApp(t, a)

	_, cmd := a.Update(keyMsg("ctrl+s"))
	if msgs := msgsFrom(cmd); len(msgs) != 0 {
		t.Errorf("empty save should produce no work, got %d messages", len(msgs))
	}
	if a.toast != nil {
		t.Errorf("empty save should not toast, got %v", *a.toast)
	}
}

func TestApp_ReviewCreatedRefreshesAndSwitchesTab(t *testing.T) {
	a := newTestApp(t, testGeo())
	initApp(t, a)

	_, cmd := a.Update(keyMsg("enter"))
	for _, c := range feed(a, cmd, loadMsgs) {
		feed(a, c, loadMsgs)
	}
	boatID := a.Detail.BoatID()

	review := model.BoatReview{BoatID: boatID, Name: "Solid", Comment: "No leaks.", Rating: 4}
	_, cmd = a.Update(SubmitReviewMsg{Review: review})
	next := feed(a, cmd, loadMsgs)

	if a.toast == nil || a.toast.Title != "Review Created!" {
		t.Errorf("expected Review Created! toast, got %v", a.toast)
	}
	if a.Detail.ActiveTab() != TabReviews {
		t.Errorf("active tab = %q, want %q", a.Detail.ActiveTab(), TabReviews)
	}

	for _, c := range next {
		feed(a, c, loadMsgs)
	}
	if got := len(a.Reviews.Reviews); got != 1 {
		t.Errorf("reviews after refresh = %d, want 1", got)
	}
}

func TestApp_WidgetLoadsOnceOnAddReviewTab(t *testing.T) {
	a := newTestApp(t, testGeo())
	initApp(t, a)

	a.Focus.SetFocus("detail")
	a.applyFocus()

	// Select a boat so the tabs render, then activate Add Review twice.
	a.Update(SelectBoatMsg{BoatID: "boat-osprey"})
	_, cmd := a.Update(keyMsg("]"))
	feed(a, cmd, loadMsgs)
	_, cmd = a.Update(keyMsg("]"))
	for _, c := range feed(a, cmd, loadMsgs) {
		feed(a, c, loadMsgs)
	}

	if !a.bridge.Initialized() {
		t.Fatal("widget should be initialized after its assets loaded")
	}

	// Leaving and re-entering the tab must not reload the assets.
	a.Update(keyMsg("["))
	_, cmd = a.Update(keyMsg("]"))
	for _, msg := range msgsFrom(cmd) {
		if _, ok := msg.(WidgetAssetsLoadedMsg); ok {
			t.Error("widget assets loaded a second time")
		}
	}
}

func TestApp_FullDetailModeAndBack(t *testing.T) {
	a := newTestApp(t, testGeo())
	initApp(t, a)

	a.Update(SelectBoatMsg{BoatID: "boat-osprey"})
	a.Update(ShowFullDetailMsg{BoatID: "boat-osprey"})
	if a.Mode != ModeFullDetail {
		t.Fatalf("mode = %v, want FullDetail", a.Mode)
	}
	a.Update(keyMsg("esc"))
	if a.Mode != ModeSearch {
		t.Errorf("mode after esc = %v, want Search", a.Mode)
	}
}

func TestApp_FocusRotation(t *testing.T) {
	a := newTestApp(t, testGeo())
	initApp(t, a)

	order := []string{"detail", "nearby", "map", "similar", "search"}
	for _, want := range order {
		a.Update(keyMsg("tab"))
		if a.Focus.Current != want {
			t.Fatalf("focus = %q, want %q", a.Focus.Current, want)
		}
	}
}
