package font5x7

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want Glyph
	}{
		{"space", ' ', Blank},
		{"zero", '0', Glyph{0x3E, 0x51, 0x49, 0x45, 0x3E}},
		{"A", 'A', Glyph{0x7E, 0x11, 0x11, 0x11, 0x7E}},
		{"tilde", '~', Glyph{0x10, 0x08, 0x08, 0x10, 0x08}},
		{"control char", '\n', Blank},
		{"DEL", 0x7F, Blank},
		{"negative", -1, Blank},
		{"non-ASCII", 'é', Blank},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lookup(tt.r); got != tt.want {
				t.Errorf("Lookup(%q) = % X, want % X", tt.r, got, tt.want)
			}
		})
	}
}

func TestSupported(t *testing.T) {
	for r := rune(0); r < 0x100; r++ {
		want := r >= 0x20 && r <= 0x7E
		if got := Supported(r); got != want {
			t.Errorf("Supported(0x%02X) = %v, want %v", r, got, want)
		}
	}
}

func TestBottomRowClear(t *testing.T) {
	// '_' and the descenders reach row 6; row 7 stays free for line spacing.
	for r := rune(first); r <= last; r++ {
		for i, col := range Lookup(r) {
			if col&0x80 != 0 {
				t.Errorf("glyph %q column %d sets row 7", r, i)
			}
		}
	}
}

func TestPrintableGlyphsNotBlank(t *testing.T) {
	for r := rune(first + 1); r <= last; r++ {
		if Lookup(r) == Blank {
			t.Errorf("glyph %q is blank", r)
		}
	}
}
