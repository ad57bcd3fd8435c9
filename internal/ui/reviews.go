package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"boatdash/internal/model"
	"boatdash/internal/ui/textutil"
	"boatdash/internal/widget"
)

// ReviewsView lists the selected boat's reviews, newest first. Ratings are
// rendered through the read-only five-star class.
type ReviewsView struct {
	Reviews []model.BoatReview
	cursor  int
	loading bool
	spinner spinner.Model
	loadErr error
}

var _ View = (*ReviewsView)(nil)

// NewReviewsView creates an empty reviews list.
func NewReviewsView() *ReviewsView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))
	return &ReviewsView{spinner: s}
}

// Init implements View.
func (v *ReviewsView) Init() tea.Cmd {
	return v.spinner.Tick
}

// SetLoading flips the loading flag and keeps the spinner ticking while set.
func (v *ReviewsView) SetLoading(loading bool) tea.Cmd {
	v.loading = loading
	if loading {
		return v.spinner.Tick
	}
	return nil
}

// SetReviews replaces the list contents.
func (v *ReviewsView) SetReviews(reviews []model.BoatReview, err error) {
	v.Reviews = reviews
	v.loadErr = err
	if v.cursor >= len(reviews) {
		v.cursor = len(reviews) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

// Update implements View.
func (v *ReviewsView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if v.loading {
			var cmd tea.Cmd
			v.spinner, cmd = v.spinner.Update(msg)
			return v, cmd
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if v.cursor < len(v.Reviews)-1 {
				v.cursor++
			}
		case "k", "up":
			if v.cursor > 0 {
				v.cursor--
			}
		}
	}
	return v, nil
}

// View implements View.
func (v *ReviewsView) View() string {
	var b strings.Builder
	title := fmt.Sprintf("Reviews (%d)", len(v.Reviews))
	if v.loading {
		title += " " + v.spinner.View()
	}
	b.WriteString(Styles.Title.Render(title) + "\n\n")

	if v.loadErr != nil {
		b.WriteString(Styles.Empty.Render("could not load reviews") + "\n")
		return b.String()
	}
	if len(v.Reviews) == 0 {
		b.WriteString(Styles.Empty.Render("(no reviews yet)") + "\n")
		return b.String()
	}

	for i, r := range v.Reviews {
		bullet := "  "
		nameStyle := Styles.Normal
		if i == v.cursor {
			bullet = "▸ "
			nameStyle = Styles.Selected
		}
		b.WriteString(bullet + nameStyle.Render(r.Name) + "  " + Styles.Rating.Render(stars(r.Rating)) + "\n")
		b.WriteString("    " + Styles.Muted.Render(textutil.Truncate(r.Comment, 52)) + "\n")
		b.WriteString("    " + Styles.Muted.Render(r.CreatedAt.Format("2 Jan 2006")) + "\n")
	}
	return b.String()
}

// stars renders a rating as filled and empty star glyphs on the five-star
// scale.
func stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > widget.MaxRating {
		rating = widget.MaxRating
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", widget.MaxRating-rating)
}
