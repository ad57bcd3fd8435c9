// Package textutil provides unicode-aware text helpers for table rendering.
// Boat names and review comments may contain wide characters, so truncation
// and padding work in terminal columns, not bytes.
package textutil

import "github.com/mattn/go-runewidth"

// Ellipsis is appended when a value is truncated.
const Ellipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate cuts s to at most maxWidth columns, appending the ellipsis when
// anything was removed.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}

	available := maxWidth - runewidth.StringWidth(Ellipsis)
	if available < 0 {
		return Ellipsis
	}

	var (
		out   []rune
		width int
	)
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if width+rw > available {
			break
		}
		out = append(out, r)
		width += rw
	}
	return string(out) + Ellipsis
}

// PadRight pads or truncates s to exactly targetWidth columns, space-filled
// on the right.
func PadRight(s string, targetWidth int) string {
	if runewidth.StringWidth(s) >= targetWidth {
		return Truncate(s, targetWidth)
	}
	return s + runewidth.FillRight("", targetWidth-runewidth.StringWidth(s))
}

// PadLeft pads or truncates s to exactly targetWidth columns, space-filled on
// the left.
func PadLeft(s string, targetWidth int) string {
	if runewidth.StringWidth(s) >= targetWidth {
		return Truncate(s, targetWidth)
	}
	return runewidth.FillLeft("", targetWidth-runewidth.StringWidth(s)) + s
}
