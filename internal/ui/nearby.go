package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"boatdash/internal/markers"
)

// NearbyErrorTitle heads the toast shown when the proximity query fails.
const NearbyErrorTitle = "Error loading Boats Near Me"

// NearbyView renders the boats-near-me marker list. Markers come from the
// composer, which stays empty until both the viewer position and the first
// query result have arrived.
type NearbyView struct {
	composer *markers.Composer
	loading  bool
	spinner  spinner.Model
	focused  bool
	noGeo    bool
}

var _ View = (*NearbyView)(nil)

// NewNearbyView creates the panel around composer.
func NewNearbyView(composer *markers.Composer) *NearbyView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))
	return &NearbyView{composer: composer, spinner: s}
}

// Init implements View.
func (v *NearbyView) Init() tea.Cmd {
	return v.spinner.Tick
}

// SetLoading flips the loading flag and keeps the spinner ticking while set.
func (v *NearbyView) SetLoading(loading bool) tea.Cmd {
	v.loading = loading
	if loading {
		return v.spinner.Tick
	}
	return nil
}

// SetFocused marks the panel as the focus target.
func (v *NearbyView) SetFocused(focused bool) { v.focused = focused }

// SetGeoUnavailable records that no viewer position could be produced. The
// panel degrades to an empty state without any toast.
func (v *NearbyView) SetGeoUnavailable() { v.noGeo = true }

// Update implements View.
func (v *NearbyView) Update(msg tea.Msg) (View, tea.Cmd) {
	if tick, ok := msg.(spinner.TickMsg); ok && v.loading {
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(tick)
		return v, cmd
	}
	return v, nil
}

// View implements View.
func (v *NearbyView) View() string {
	var b strings.Builder

	titleStyle := Styles.Title
	if v.focused {
		titleStyle = Styles.TitleFocused
	}
	title := "Boats Near Me"
	if v.loading {
		title += " " + v.spinner.View()
	}
	b.WriteString(titleStyle.Render(title) + "\n\n")

	ms := v.composer.Markers()
	if len(ms) == 0 {
		if v.noGeo {
			b.WriteString(Styles.Empty.Render("(location unavailable)") + "\n")
		} else {
			b.WriteString(Styles.Empty.Render("(locating...)") + "\n")
		}
		return b.String()
	}

	for _, m := range ms {
		if m.Icon == markers.IconSelf {
			b.WriteString(Styles.Selected.Render("◉ "+m.Title) + "\n")
			continue
		}
		b.WriteString(Styles.Normal.Render("⚓ "+m.Title) + "  " +
			Styles.Muted.Render(m.Description) + "\n")
	}
	b.WriteString("\n" + Styles.Muted.Render(fmt.Sprintf("%d nearby", len(ms)-1)))
	return b.String()
}
