package st7735

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"periph.io/x/devices/v3/st7735/rgb565"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var white = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

func TestFontDisplaySize(t *testing.T) {
	d, _ := newTestDev(t, &Opts{W: 80, H: 160, OffsetX: 26, OffsetY: 1})
	w, h := d.FontDisplay().Size()
	if w != 80 || h != 160 {
		t.Errorf("Size() = %d, %d, want 80, 160", w, h)
	}
}

func TestFontDisplayFillRectangle(t *testing.T) {
	d, p := newTestDev(t, nil)
	f := d.FontDisplay()
	if err := f.FillRectangle(120, 4, 20, 2, color.RGBA{R: 0xFF, A: 0xFF}); err != nil {
		t.Fatal(err)
	}
	if got := p.Window(); got != image.Rect(120, 4, 128, 6) {
		t.Errorf("window = %v, want clipped to the right edge", got)
	}
	if got := p.At(127, 5); got != rgb565.Red {
		t.Errorf("At(127, 5) = 0x%04X, want Red", uint16(got))
	}
}

func TestWriteLine(t *testing.T) {
	tests := []struct {
		name string
		font tinyfont.Fonter
	}{
		{"picopixel", &tinyfont.Picopixel},
		{"proggy", &proggy.TinySZ8pt7b},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, p := newTestDev(t, nil)
			if err := d.WriteLine(tt.font, 2, 12, "Hi", white); err != nil {
				t.Fatal(err)
			}
			if p.Count(cmdRAMWR) == 0 {
				t.Fatal("no pixels drawn")
			}
			lit := 0
			for y := 0; y < 16; y++ {
				for x := 0; x < 30; x++ {
					if p.At(x, y) == rgb565.White {
						lit++
					}
				}
			}
			if lit == 0 || lit > p.Count(cmdRAMWR) {
				t.Errorf("%d white pixels for %d pixel writes", lit, p.Count(cmdRAMWR))
			}
			if p.OutOfView != 0 {
				t.Errorf("OutOfView = %d", p.OutOfView)
			}
		})
	}
}

func TestWriteLineOffPanel(t *testing.T) {
	d, p := newTestDev(t, nil)
	if err := d.WriteLine(&tinyfont.Picopixel, 200, 12, "clipped", white); err != nil {
		t.Fatal(err)
	}
	if len(p.Ops) != 0 {
		t.Errorf("%d transfers for text right of the panel", len(p.Ops))
	}
}

func TestWriteLineErrors(t *testing.T) {
	d, p := newTestDev(t, nil)
	p.Err = errors.New("bus fault")
	if err := d.WriteLine(&tinyfont.Picopixel, 0, 8, "A", white); !errors.Is(err, p.Err) {
		t.Errorf("WriteLine() = %v, want bus fault", err)
	}

	p.Err = nil
	if err := d.Halt(); err != nil {
		t.Fatal(err)
	}
	if err := d.WriteLine(&tinyfont.Picopixel, 0, 8, "A", white); err != ErrHalted {
		t.Errorf("WriteLine() after Halt = %v, want ErrHalted", err)
	}
}
