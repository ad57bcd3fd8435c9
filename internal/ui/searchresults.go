package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"boatdash/internal/editbuffer"
	"boatdash/internal/model"
	"boatdash/internal/ui/textutil"
)

// TypeFilterChangedMsg is sent when the user cycles the boat type filter.
// An empty TypeID means all types.
type TypeFilterChangedMsg struct {
	TypeID string
}

// editableColumns are the table columns that accept inline edits, in the
// order the edit cursor moves through them.
var editableColumns = []string{"name", "length", "price", "description"}

// SearchResultsView is the editable search results table. Selecting a row
// publishes the boat on the selection bus; inline edits accumulate as drafts
// until the user saves the batch.
type SearchResultsView struct {
	Boats   []model.Boat
	Types   []model.BoatType
	typeIdx int // 0 = all types, 1..n = Types[typeIdx-1]
	cursor  int

	flow    *editbuffer.Flow
	editing bool
	editCol int
	input   textinput.Model

	loading bool
	spinner spinner.Model
	focused bool
	loadErr error
}

var _ View = (*SearchResultsView)(nil)

// NewSearchResultsView creates the search results panel around flow's draft
// buffer.
func NewSearchResultsView(flow *editbuffer.Flow) *SearchResultsView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))

	ti := textinput.New()
	ti.Width = 28

	return &SearchResultsView{flow: flow, spinner: s, input: ti}
}

// Init implements View.
func (v *SearchResultsView) Init() tea.Cmd {
	return v.spinner.Tick
}

// SetLoading flips the loading flag and keeps the spinner ticking while set.
func (v *SearchResultsView) SetLoading(loading bool) tea.Cmd {
	v.loading = loading
	if loading {
		return v.spinner.Tick
	}
	return nil
}

// SetFocused marks the panel as the focus target.
func (v *SearchResultsView) SetFocused(focused bool) { v.focused = focused }

// SetBoats replaces the table rows, clamping the cursor into range.
func (v *SearchResultsView) SetBoats(boats []model.Boat, err error) {
	v.Boats = boats
	v.loadErr = err
	if v.cursor >= len(boats) {
		v.cursor = len(boats) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

// SelectedBoat returns the boat under the cursor.
func (v *SearchResultsView) SelectedBoat() (model.Boat, bool) {
	if v.cursor < 0 || v.cursor >= len(v.Boats) {
		return model.Boat{}, false
	}
	return v.Boats[v.cursor], true
}

// TypeFilter returns the active boat type ID, empty for all types.
func (v *SearchResultsView) TypeFilter() string {
	if v.typeIdx == 0 || v.typeIdx > len(v.Types) {
		return ""
	}
	return v.Types[v.typeIdx-1].ID
}

// Update implements View.
func (v *SearchResultsView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if v.loading {
			var cmd tea.Cmd
			v.spinner, cmd = v.spinner.Update(msg)
			return v, cmd
		}
		return v, nil
	case tea.KeyMsg:
		if v.editing {
			return v.updateEditing(msg)
		}
		return v.updateBrowsing(msg)
	}
	if v.editing {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *SearchResultsView) updateBrowsing(msg tea.KeyMsg) (View, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if v.cursor < len(v.Boats)-1 {
			v.cursor++
		}
	case "k", "up":
		if v.cursor > 0 {
			v.cursor--
		}
	case "g":
		v.cursor = 0
	case "G":
		if len(v.Boats) > 0 {
			v.cursor = len(v.Boats) - 1
		}
	case "h", "left":
		if v.editCol > 0 {
			v.editCol--
		}
	case "l", "right":
		if v.editCol < len(editableColumns)-1 {
			v.editCol++
		}
	case "t":
		v.typeIdx = (v.typeIdx + 1) % (len(v.Types) + 1)
		id := v.TypeFilter()
		return v, func() tea.Msg { return TypeFilterChangedMsg{TypeID: id} }
	case "T":
		v.typeIdx--
		if v.typeIdx < 0 {
			v.typeIdx = len(v.Types)
		}
		id := v.TypeFilter()
		return v, func() tea.Msg { return TypeFilterChangedMsg{TypeID: id} }
	case "enter":
		if boat, ok := v.SelectedBoat(); ok {
			return v, func() tea.Msg { return SelectBoatMsg{BoatID: boat.ID} }
		}
	case "e":
		if boat, ok := v.SelectedBoat(); ok {
			v.editing = true
			v.input.SetValue(v.cellValue(boat, editableColumns[v.editCol]))
			v.input.CursorEnd()
			v.input.Focus()
			return v, textinput.Blink
		}
	}
	return v, nil
}

func (v *SearchResultsView) updateEditing(msg tea.KeyMsg) (View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.editing = false
		v.input.Blur()
		return v, nil
	case "enter":
		boat, ok := v.SelectedBoat()
		if !ok {
			v.editing = false
			return v, nil
		}
		col := editableColumns[v.editCol]
		value, err := parseCell(col, v.input.Value())
		if err != nil {
			// Keep editing until the value parses or the user bails out.
			return v, nil
		}
		v.flow.Buffer().RecordEdit(boat.ID, col, value)
		v.editing = false
		v.input.Blur()
		return v, nil
	}
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// parseCell converts raw input into the column's storage type.
func parseCell(col, raw string) (any, error) {
	raw = strings.TrimSpace(raw)
	switch col {
	case "length", "price":
		return strconv.ParseFloat(raw, 64)
	default:
		return raw, nil
	}
}

// cellValue returns the display value for one cell, with any pending draft
// overlaid on the fetched row.
func (v *SearchResultsView) cellValue(b model.Boat, col string) string {
	if draft, ok := v.flow.Buffer().Draft(b.ID, col); ok {
		return fmt.Sprintf("%v", draft)
	}
	switch col {
	case "name":
		return b.Name
	case "length":
		return strconv.FormatFloat(b.Length, 'f', -1, 64)
	case "price":
		return strconv.FormatFloat(b.Price, 'f', -1, 64)
	case "description":
		return b.Description
	}
	return ""
}

func (v *SearchResultsView) isDraft(b model.Boat, col string) bool {
	_, ok := v.flow.Buffer().Draft(b.ID, col)
	return ok
}

// View implements View.
func (v *SearchResultsView) View() string {
	var b strings.Builder

	titleStyle := Styles.Title
	if v.focused {
		titleStyle = Styles.TitleFocused
	}
	title := fmt.Sprintf("Boats (%d)", len(v.Boats))
	if v.loading {
		title += " " + v.spinner.View()
	}
	b.WriteString(titleStyle.Render(title) + "\n")

	filter := "All Types"
	if v.typeIdx > 0 && v.typeIdx <= len(v.Types) {
		filter = v.Types[v.typeIdx-1].Name
	}
	b.WriteString(Styles.Muted.Render("Type: "+filter+"  [t]") + "\n\n")

	if v.loadErr != nil {
		b.WriteString(Styles.Empty.Render("could not load boats") + "\n")
		return b.String()
	}
	if len(v.Boats) == 0 {
		b.WriteString(Styles.Empty.Render("(no boats match)") + "\n")
		return b.String()
	}

	b.WriteString(Styles.Muted.Render(fmt.Sprintf("  %-16s %-10s %6s %10s  %s", "Name", "Type", "Len", "Price", "Description")) + "\n")
	for i, boat := range v.Boats {
		selected := i == v.cursor
		bullet := "  "
		if selected {
			bullet = "▸ "
		}

		if selected && v.editing {
			col := editableColumns[v.editCol]
			b.WriteString(bullet + Styles.Selected.Render(boat.Name) +
				Styles.Muted.Render("  "+col+": ") + v.input.View() + "\n")
			continue
		}

		line := textutil.PadRight(v.cellValue(boat, "name"), 16) + " " +
			textutil.PadRight(boat.TypeName, 10) + " " +
			textutil.PadLeft(v.cellValue(boat, "length"), 6) + " " +
			textutil.PadLeft("$"+v.cellValue(boat, "price"), 10) + "  " +
			textutil.Truncate(v.cellValue(boat, "description"), 28)

		style := Styles.Normal
		switch {
		case selected:
			style = Styles.Selected
		case v.hasDraftRow(boat):
			style = Styles.Draft
		}
		b.WriteString(bullet + style.Render(line))
		if selected {
			b.WriteString(Styles.Muted.Render("  [" + editableColumns[v.editCol] + "]"))
		}
		b.WriteString("\n")
	}

	if n := v.flow.Buffer().Len(); n > 0 {
		b.WriteString("\n" + Styles.Draft.Render(fmt.Sprintf("%d unsaved row(s)  ctrl+s to save", n)) + "\n")
	}
	return b.String()
}

func (v *SearchResultsView) hasDraftRow(b model.Boat) bool {
	for _, col := range editableColumns {
		if v.isDraft(b, col) {
			return true
		}
	}
	return false
}
