package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "39"  // Blue - titles, highlights
	ColorHighlight = "205" // Magenta - selected items, borders
	ColorDanger    = "196" // Red - error toasts
	ColorSuccess   = "78"  // Green - success toasts
	ColorMuted     = "241" // Gray - dimmed text, hints
	ColorText      = "252" // Light gray - normal text
	ColorDim       = "243" // Darker gray - very dim text
	ColorRating    = "220" // Gold - rating stars
)

// Styles contains shared style definitions used across panels.
var Styles = struct {
	Title        lipgloss.Style // Bold accent - panel titles
	TitleFocused lipgloss.Style // Bold highlight - focused panel title

	Box        lipgloss.Style // Standard panel box
	BoxFocused lipgloss.Style // Focused panel box

	Selected     lipgloss.Style // Cursor row
	Muted        lipgloss.Style // Dimmed text
	Normal       lipgloss.Style // Normal text
	Hint         lipgloss.Style // Help/hint text
	Empty        lipgloss.Style // Empty state text
	Draft        lipgloss.Style // Cells with a pending edit
	Rating       lipgloss.Style // Star glyphs
	ToastSuccess lipgloss.Style // Success toast bar
	ToastError   lipgloss.Style // Error toast bar
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleFocused: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	BoxFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Draft: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorRating)).
		Italic(true),
	Rating: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorRating)),
	ToastSuccess: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color(ColorSuccess)).
		Padding(0, 1),
	ToastError: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color(ColorDanger)).
		Padding(0, 1),
}
