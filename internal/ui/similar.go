package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"boatdash/internal/model"
)

// SimilarCriterionChangedMsg is sent when the user cycles the similarity
// criterion.
type SimilarCriterionChangedMsg struct {
	By model.SimilarBy
}

// similarCriteria is the cycle order for the criterion key.
var similarCriteria = []model.SimilarBy{
	model.SimilarByType,
	model.SimilarByPrice,
	model.SimilarByLength,
}

// SimilarView lists boats similar to the selected one by a switchable
// criterion.
type SimilarView struct {
	Boats   []model.Boat
	byIdx   int
	cursor  int
	focused bool
	loadErr error
	hasBoat bool
}

var _ View = (*SimilarView)(nil)

// NewSimilarView creates an empty similar-boats panel.
func NewSimilarView() *SimilarView { return &SimilarView{} }

// Criterion returns the active similarity criterion.
func (v *SimilarView) Criterion() model.SimilarBy { return similarCriteria[v.byIdx] }

// SetSelected records whether a boat is selected at all.
func (v *SimilarView) SetSelected(has bool) { v.hasBoat = has }

// SetBoats replaces the list contents.
func (v *SimilarView) SetBoats(boats []model.Boat, err error) {
	v.Boats = boats
	v.loadErr = err
	if v.cursor >= len(boats) {
		v.cursor = len(boats) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

// SetFocused marks the panel as the focus target.
func (v *SimilarView) SetFocused(focused bool) { v.focused = focused }

// SelectedBoat returns the boat under the cursor.
func (v *SimilarView) SelectedBoat() (model.Boat, bool) {
	if v.cursor < 0 || v.cursor >= len(v.Boats) {
		return model.Boat{}, false
	}
	return v.Boats[v.cursor], true
}

// Init implements View.
func (v *SimilarView) Init() tea.Cmd { return nil }

// Update implements View.
func (v *SimilarView) Update(msg tea.Msg) (View, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	switch key.String() {
	case "j", "down":
		if v.cursor < len(v.Boats)-1 {
			v.cursor++
		}
	case "k", "up":
		if v.cursor > 0 {
			v.cursor--
		}
	case "c":
		v.byIdx = (v.byIdx + 1) % len(similarCriteria)
		by := v.Criterion()
		return v, func() tea.Msg { return SimilarCriterionChangedMsg{By: by} }
	case "enter":
		if boat, ok := v.SelectedBoat(); ok {
			return v, func() tea.Msg { return SelectBoatMsg{BoatID: boat.ID} }
		}
	}
	return v, nil
}

// View implements View.
func (v *SimilarView) View() string {
	var b strings.Builder
	titleStyle := Styles.Title
	if v.focused {
		titleStyle = Styles.TitleFocused
	}
	b.WriteString(titleStyle.Render("Similar Boats") + "\n")
	b.WriteString(Styles.Muted.Render("By: "+string(v.Criterion())+"  [c]") + "\n\n")

	switch {
	case !v.hasBoat:
		b.WriteString(Styles.Empty.Render(LabelSelectABoat) + "\n")
	case v.loadErr != nil:
		b.WriteString(Styles.Empty.Render("could not load similar boats") + "\n")
	case len(v.Boats) == 0:
		b.WriteString(Styles.Empty.Render("(no similar boats)") + "\n")
	default:
		for i, boat := range v.Boats {
			bullet := "  "
			style := Styles.Normal
			if i == v.cursor {
				bullet = "▸ "
				style = Styles.Selected
			}
			b.WriteString(bullet + style.Render(boat.Name) + "  " +
				Styles.Muted.Render(fmt.Sprintf("%v ft  $%.0f", boat.Length, boat.Price)) + "\n")
		}
	}
	return b.String()
}
