package textutil

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		maxWidth int
		want     string
	}{
		{"fits", "Osprey", 10, "Osprey"},
		{"exact", "Osprey", 6, "Osprey"},
		{"cut", "Wave Cutter", 8, "Wave Cu…"},
		{"zero", "Osprey", 0, ""},
		{"one", "Osprey", 1, "…"},
		{"wide runes", "ヨット二艘", 5, "ヨッ…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.in, tt.maxWidth); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("abc", 6); got != "abc   " {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadRight("abcdefgh", 6); got != "abcde…" {
		t.Errorf("PadRight overflow = %q", got)
	}
	// Wide runes occupy two columns each.
	if got := VisualWidth(PadRight("ヨット", 8)); got != 8 {
		t.Errorf("padded width = %d, want 8", got)
	}
}

func TestPadLeft(t *testing.T) {
	if got := PadLeft("42", 5); got != "   42" {
		t.Errorf("PadLeft = %q", got)
	}
}
