package ui

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"boatdash/internal/binding"
	"boatdash/internal/bus"
	"boatdash/internal/dataservice"
	"boatdash/internal/editbuffer"
	"boatdash/internal/geo"
	"boatdash/internal/markers"
	"boatdash/internal/model"
	"boatdash/internal/notify"
	"boatdash/internal/widget"
)

// AppConfig carries the collaborators the root model is built around.
type AppConfig struct {
	Service      *dataservice.Service
	Geo          geo.Source
	AssetLoader  widget.AssetLoader
	AssetBaseURL string
	Logger       *slog.Logger
}

// AppModel is the root model: the search dashboard plus the full-screen
// record page. All panel state changes happen on the update loop; fetches run
// as commands and settle through generation-checked messages.
type AppModel struct {
	Mode AppMode

	svc    *dataservice.Service
	bus    *bus.Bus
	geo    geo.Source
	logger *slog.Logger

	boatsBinding   *binding.Binding
	boatBinding    *binding.Binding
	reviewsBinding *binding.Binding
	similarBinding *binding.Binding
	nearbyBinding  *binding.Binding

	searchLoading  *binding.LoadingCoordinator
	reviewsLoading *binding.LoadingCoordinator
	nearbyLoading  *binding.LoadingCoordinator

	flow     *editbuffer.Flow
	composer *markers.Composer
	bridge   *widget.Bridge
	toasts   *toastCollector

	Search    *SearchResultsView
	Detail    *DetailTabsView
	Reviews   *ReviewsView
	AddReview *AddReviewView
	Nearby    *NearbyView
	Map       *MapView
	Similar   *SimilarView

	Focus *FocusManager

	toast   *notify.Notification
	toastID int

	width  int
	height int
}

// NewAppModel wires the panels, bindings, and shared components together.
func NewAppModel(cfg AppConfig) *AppModel {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	m := &AppModel{
		Mode:     ModeSearch,
		svc:      cfg.Service,
		bus:      bus.New(logger),
		geo:      cfg.Geo,
		logger:   logger,
		composer: markers.NewComposer(),
		toasts:   &toastCollector{},
	}

	m.bridge = widget.NewBridge(cfg.AssetLoader, cfg.AssetBaseURL, m.toasts)

	m.Reviews = NewReviewsView()
	m.AddReview = NewAddReviewView(m.bridge)
	m.Detail = NewDetailTabsView(m.bus, m.Reviews, m.AddReview)
	m.Map = NewMapView(m.bus)
	m.Nearby = NewNearbyView(m.composer)
	m.Similar = NewSimilarView()

	m.searchLoading = binding.NewLoadingCoordinator(func(ev binding.LoadingEvent) {
		m.Search.SetLoading(ev == binding.EventLoading)
	})
	m.reviewsLoading = binding.NewLoadingCoordinator(func(ev binding.LoadingEvent) {
		m.Reviews.SetLoading(ev == binding.EventLoading)
	})
	m.nearbyLoading = binding.NewLoadingCoordinator(func(ev binding.LoadingEvent) {
		m.Nearby.SetLoading(ev == binding.EventLoading)
	})

	m.flow = editbuffer.NewFlow(editbuffer.NewBuffer(), m.searchLoading, m.toasts)
	m.Search = NewSearchResultsView(m.flow)

	svc := cfg.Service
	m.boatsBinding = binding.New(func(ctx context.Context, p binding.Params) (any, error) {
		typeID, _ := p["boatTypeID"].(string)
		return svc.GetBoats(ctx, typeID)
	})
	m.boatBinding = binding.New(func(ctx context.Context, p binding.Params) (any, error) {
		boatID, _ := p["boatID"].(string)
		return svc.GetBoat(ctx, boatID)
	}, "boatID")
	m.reviewsBinding = binding.New(func(ctx context.Context, p binding.Params) (any, error) {
		boatID, _ := p["boatID"].(string)
		return svc.GetAllReviews(ctx, boatID)
	}, "boatID")
	m.similarBinding = binding.New(func(ctx context.Context, p binding.Params) (any, error) {
		boatID, _ := p["boatID"].(string)
		by, _ := p["similarBy"].(string)
		return svc.GetSimilarBoats(ctx, boatID, model.SimilarBy(by))
	}, "boatID")
	m.nearbyBinding = binding.New(func(ctx context.Context, p binding.Params) (any, error) {
		lat, _ := p["latitude"].(float64)
		lon, _ := p["longitude"].(float64)
		typeID, _ := p["boatTypeID"].(string)
		return svc.GetBoatsByLocation(ctx, lat, lon, typeID)
	}, "latitude", "longitude")

	// Seed the criterion so the first selection fetches by type.
	m.similarBinding.SetParam("similarBy", string(model.SimilarByType))

	m.Focus = &FocusManager{
		Current: "search",
		Order:   []string{"search", "detail", "nearby", "map", "similar"},
	}
	m.applyFocus()

	return m
}

// Bus returns the selection bus, mainly for tests.
func (m *AppModel) Bus() *bus.Bus { return m.bus }

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model. The type options load, the first search issues,
// and the one-shot viewer location read starts.
func (a *appModelAdapter) Init() tea.Cmd {
	cmds := []tea.Cmd{
		loadBoatTypesCmd(a.svc),
		a.Search.Init(),
		a.Nearby.Init(),
		a.Reviews.Init(),
		a.AddReview.Init(),
	}
	if t := a.boatsBinding.SetParam("boatTypeID", ""); t != nil {
		a.searchLoading.Begin()
		cmds = append(cmds, runBoatsTicket(t))
	}
	if a.composer.ShouldAcquire() {
		cmds = append(cmds, acquireLocationCmd(a.geo))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil
	case tea.KeyMsg:
		if handled, cmd := a.handleAppKey(msg); handled {
			return a, cmd
		}
		cmds = append(cmds, a.routeKey(msg))
	default:
		cmds = append(cmds, a.handleMsg(msg)...)
	}

	cmds = append(cmds, a.drainToasts()...)
	return a, tea.Batch(cmds...)
}

// handleAppKey processes app-level keys before any panel sees them.
func (a *appModelAdapter) handleAppKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return true, tea.Quit
	}
	if a.Mode == ModeFullDetail {
		if key == "esc" || key == "q" {
			a.Mode = ModeSearch
			return true, nil
		}
		return true, nil
	}

	switch key {
	case "q":
		if !a.typing() {
			return true, tea.Quit
		}
	case "tab":
		if !a.typing() {
			a.Focus.Next()
			a.applyFocus()
			return true, nil
		}
	case "shift+tab":
		if !a.typing() {
			a.Focus.Prev()
			a.applyFocus()
			return true, nil
		}
	case "ctrl+s":
		return true, a.commitDrafts()
	case "R":
		if !a.typing() {
			return true, a.refreshBoats()
		}
	}
	return false, nil
}

// typing reports whether a text field currently owns the keyboard.
func (a *appModelAdapter) typing() bool {
	if a.Search.editing {
		return true
	}
	return a.Focus.Current == "detail" && a.Detail.ActiveTab() == TabAddReview
}

// routeKey delivers a key to the focused panel; spinner ticks and other
// component messages are broadcast instead.
func (a *appModelAdapter) routeKey(msg tea.KeyMsg) tea.Cmd {
	var (
		v   View
		cmd tea.Cmd
	)
	switch a.Focus.Current {
	case "search":
		v, cmd = a.Search.Update(msg)
		a.Search = v.(*SearchResultsView)
	case "detail":
		v, cmd = a.Detail.Update(msg)
		a.Detail = v.(*DetailTabsView)
		// First activation of the Add Review tab triggers the one-time
		// widget asset load.
		if a.Detail.ActiveTab() == TabAddReview && a.bridge.ShouldLoad() {
			cmd = tea.Batch(cmd, loadWidgetAssetsCmd(a.bridge))
		}
	case "nearby":
		v, cmd = a.Nearby.Update(msg)
		a.Nearby = v.(*NearbyView)
	case "map":
		v, cmd = a.Map.Update(msg)
		a.Map = v.(*MapView)
	case "similar":
		v, cmd = a.Similar.Update(msg)
		a.Similar = v.(*SimilarView)
	}
	return cmd
}

// applyFocus pushes the focus flag into the panels that render it.
func (a *AppModel) applyFocus() {
	a.Search.SetFocused(a.Focus.Current == "search")
	a.Nearby.SetFocused(a.Focus.Current == "nearby")
	a.Map.SetFocused(a.Focus.Current == "map")
	a.Similar.SetFocused(a.Focus.Current == "similar")
}

// commitDrafts starts a batch save of the pending edits, if any.
func (a *appModelAdapter) commitDrafts() tea.Cmd {
	commit := a.flow.Commit()
	if commit == nil {
		return nil
	}
	return tea.Batch(commitSaveCmd(a.svc, commit), a.Search.Init())
}

// refreshBoats re-runs the search with the current filter.
func (a *appModelAdapter) refreshBoats() tea.Cmd {
	t := a.boatsBinding.Refresh()
	if t == nil {
		return nil
	}
	a.searchLoading.Begin()
	return tea.Batch(runBoatsTicket(t), a.Search.Init())
}

// drainToasts moves queued notifications into the status bar.
func (a *appModelAdapter) drainToasts() []tea.Cmd {
	pending := a.toasts.Drain()
	if len(pending) == 0 {
		return nil
	}
	var cmds []tea.Cmd
	for _, n := range pending {
		a.logger.Info("toast", "title", n.Title, "variant", string(n.Variant))
		last := n
		a.toastID++
		a.toast = &last
		cmds = append(cmds, dismissToastCmd(a.toastID))
	}
	return cmds
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if a.Mode == ModeFullDetail {
		return a.fullDetailView()
	}

	topLeft := a.panelBox("search", a.Search.View(), 58)
	topRight := a.panelBox("detail", a.Detail.View(), 52)
	top := lipgloss.JoinHorizontal(lipgloss.Top, topLeft, topRight)

	nearby := a.panelBox("nearby", a.Nearby.View(), 38)
	mapBox := a.panelBox("map", a.Map.View(), 34)
	similar := a.panelBox("similar", a.Similar.View(), 36)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, nearby, mapBox, similar)

	status := Styles.Hint.Render("tab: focus  enter: select  e: edit  ctrl+s: save  R: refresh  q: quit")
	if a.toast != nil {
		status = renderToast(*a.toast) + "  " + status
	}

	return lipgloss.JoinVertical(lipgloss.Left, top, bottom, status)
}

func (a *appModelAdapter) panelBox(id, content string, width int) string {
	box := Styles.Box
	if a.Focus.Current == id {
		box = Styles.BoxFocused
	}
	return box.Width(width).Render(content)
}

// fullDetailView is the full-screen record page.
func (a *appModelAdapter) fullDetailView() string {
	content := a.Detail.detailsTab() + "\n\n" + a.Reviews.View()
	status := Styles.Hint.Render("esc: back")
	if a.toast != nil {
		status = renderToast(*a.toast) + "  " + status
	}
	return lipgloss.JoinVertical(lipgloss.Left, Styles.Box.Width(80).Render(content), status)
}
