package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"boatdash/internal/model"
	"boatdash/internal/widget"
)

// SubmitReviewMsg is sent when the user submits the add-review form.
type SubmitReviewMsg struct {
	Review model.BoatReview
}

// addReviewField is the focus position within the form.
type addReviewField int

const (
	fieldSubject addReviewField = iota
	fieldComment
	fieldRating
)

// AddReviewView is the new-review form: subject, comment, and the five-star
// rating control. The rating control is inert until its assets have loaded.
type AddReviewView struct {
	boatID  string
	subject textinput.Model
	comment textarea.Model
	bridge  *widget.Bridge
	rating  int
	field   addReviewField
}

var _ View = (*AddReviewView)(nil)

// NewAddReviewView creates the form around the shared rating bridge.
func NewAddReviewView(bridge *widget.Bridge) *AddReviewView {
	subject := textinput.New()
	subject.Placeholder = "Review subject"
	subject.CharLimit = 80
	subject.Width = 40
	subject.Focus()

	comment := textarea.New()
	comment.Placeholder = "Description"
	comment.SetWidth(44)
	comment.SetHeight(3)

	return &AddReviewView{subject: subject, comment: comment, bridge: bridge}
}

// Init implements View.
func (v *AddReviewView) Init() tea.Cmd {
	return textinput.Blink
}

// SetBoat points the form at the boat the review will attach to.
func (v *AddReviewView) SetBoat(boatID string) { v.boatID = boatID }

// InitializeWidget binds the loaded rating control to this form. Called once
// the widget assets have loaded.
func (v *AddReviewView) InitializeWidget() error {
	return v.bridge.Initialize(0, false, func(ch widget.RatingChange) {
		v.rating = ch.Rating
	})
}

// Reset clears the form after a successful submission.
func (v *AddReviewView) Reset() {
	v.subject.SetValue("")
	v.comment.SetValue("")
	v.rating = 0
	v.field = fieldSubject
	v.focusField()
}

func (v *AddReviewView) focusField() {
	v.subject.Blur()
	v.comment.Blur()
	switch v.field {
	case fieldSubject:
		v.subject.Focus()
	case fieldComment:
		v.comment.Focus()
	}
}

// Update implements View.
func (v *AddReviewView) Update(msg tea.Msg) (View, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		switch v.field {
		case fieldSubject:
			v.subject, cmd = v.subject.Update(msg)
		case fieldComment:
			v.comment, cmd = v.comment.Update(msg)
		}
		return v, cmd
	}

	switch key.String() {
	case "tab":
		v.field = (v.field + 1) % 3
		v.focusField()
		return v, textinput.Blink
	case "shift+tab":
		v.field--
		if v.field < 0 {
			v.field = fieldRating
		}
		v.focusField()
		return v, textinput.Blink
	}

	switch v.field {
	case fieldSubject:
		if key.String() == "enter" {
			v.field = fieldComment
			v.focusField()
			return v, nil
		}
		var cmd tea.Cmd
		v.subject, cmd = v.subject.Update(msg)
		return v, cmd
	case fieldComment:
		var cmd tea.Cmd
		v.comment, cmd = v.comment.Update(msg)
		return v, cmd
	case fieldRating:
		switch key.String() {
		case "1", "2", "3", "4", "5":
			// The control's native callback feeds back through the bridge.
			_ = v.bridge.Select(int(key.String()[0] - '0'))
			return v, nil
		case "enter":
			return v.submit()
		}
	}
	return v, nil
}

func (v *AddReviewView) submit() (View, tea.Cmd) {
	if v.boatID == "" {
		return v, nil
	}
	review := model.BoatReview{
		BoatID:  v.boatID,
		Name:    strings.TrimSpace(v.subject.Value()),
		Comment: strings.TrimSpace(v.comment.Value()),
		Rating:  v.rating,
	}
	if review.Name == "" {
		return v, nil
	}
	return v, func() tea.Msg { return SubmitReviewMsg{Review: review} }
}

// View implements View.
func (v *AddReviewView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Add Review") + "\n\n")

	b.WriteString(v.label(fieldSubject, "Subject") + "\n")
	b.WriteString("  " + v.subject.View() + "\n\n")
	b.WriteString(v.label(fieldComment, "Comment") + "\n")
	b.WriteString("  " + v.comment.View() + "\n\n")

	b.WriteString(v.label(fieldRating, "Rating") + "\n")
	if v.bridge.Initialized() {
		b.WriteString("  " + Styles.Rating.Render(stars(v.rating)))
		b.WriteString(Styles.Muted.Render("  ("+v.bridge.Class()+")") + "\n")
	} else {
		b.WriteString("  " + Styles.Empty.Render("(rating unavailable)") + "\n")
	}

	b.WriteString("\n" + Styles.Hint.Render("tab: next field  1-5: rate  enter on rating: submit"))
	return b.String()
}

func (v *AddReviewView) label(f addReviewField, name string) string {
	if v.field == f {
		return Styles.Selected.Render("▸ " + name)
	}
	return Styles.Muted.Render("  " + name)
}
