package st7735

import (
	"errors"
	"image"
	"math"
	"testing"

	"periph.io/x/devices/v3/st7735/panelsim"
	"periph.io/x/devices/v3/st7735/rgb565"
)

// lastData returns the payload of the last data transfer.
func lastData(p *panelsim.Panel) []byte {
	for i := len(p.Ops) - 1; i >= 0; i-- {
		if p.Ops[i].DC == Data {
			return p.Ops[i].B
		}
	}
	return nil
}

func TestFillScreen(t *testing.T) {
	d, p := newTestDev(t, nil)
	if err := d.FillScreen(0xABCD); err != nil {
		t.Fatal(err)
	}
	if got := p.Window(); got != d.Bounds() {
		t.Errorf("window = %v, want %v", got, d.Bounds())
	}
	if n := len(lastData(p)); n != 128*160*2 {
		t.Errorf("streamed %d bytes, want %d", n, 128*160*2)
	}
	for y := 0; y < 160; y++ {
		for x := 0; x < 128; x++ {
			if got := p.At(x, y); got != 0xABCD {
				t.Fatalf("At(%d, %d) = 0x%04X, want 0xABCD", x, y, uint16(got))
			}
		}
	}
	if p.OutOfView != 0 {
		t.Errorf("OutOfView = %d", p.OutOfView)
	}
}

func TestFillRectClipping(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h int
		want       image.Rectangle // empty when nothing is sent
	}{
		{"inside", 10, 20, 5, 4, image.Rect(10, 20, 15, 24)},
		{"whole panel", 0, 0, 128, 160, image.Rect(0, 0, 128, 160)},
		{"overflow right", 120, 0, 20, 2, image.Rect(120, 0, 128, 2)},
		{"overflow bottom", 0, 150, 3, 20, image.Rect(0, 150, 3, 160)},
		{"overflow both", 127, 159, 50, 50, image.Rect(127, 159, 128, 160)},
		{"starts at right edge", 128, 0, 5, 5, image.Rectangle{}},
		{"starts at bottom edge", 0, 160, 5, 5, image.Rectangle{}},
		{"starts left of panel", -3, 0, 10, 10, image.Rectangle{}},
		{"starts above panel", 0, -1, 10, 10, image.Rectangle{}},
		{"zero width", 5, 5, 0, 10, image.Rectangle{}},
		{"negative height", 5, 5, 10, -2, image.Rectangle{}},
		{"huge width", 5, 0, math.MaxInt, 1, image.Rect(5, 0, 128, 1)},
		{"huge height", 0, 7, 2, math.MaxInt, image.Rect(0, 7, 2, 160)},
		{"huge both", 0, 0, math.MaxInt, math.MaxInt, image.Rect(0, 0, 128, 160)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, p := newTestDev(t, nil)
			if err := d.FillRect(tt.x, tt.y, tt.w, tt.h, rgb565.Red); err != nil {
				t.Fatal(err)
			}
			if tt.want.Empty() {
				if len(p.Ops) != 0 {
					t.Errorf("%d transfers, want none", len(p.Ops))
				}
				return
			}
			if got := p.Count(cmdRAMWR); got != 1 {
				t.Errorf("Count(RAMWR) = %d, want 1", got)
			}
			if got := p.Window(); got != tt.want {
				t.Errorf("window = %v, want %v", got, tt.want)
			}
			if n := len(lastData(p)); n != tt.want.Dx()*tt.want.Dy()*2 {
				t.Errorf("streamed %d bytes, want %d", n, tt.want.Dx()*tt.want.Dy()*2)
			}
		})
	}
}

func TestFillRectAlwaysContained(t *testing.T) {
	d, p := newTestDev(t, nil)
	coords := []int{-200, -5, -1, 0, 1, 64, 126, 127, 128, 159, 160, 200}
	sizes := []int{-1, 0, 1, 7, 128, 500, math.MaxInt}
	for _, x := range coords {
		for _, y := range coords {
			for _, w := range sizes {
				for _, h := range sizes {
					p.ClearLog()
					if err := d.FillRect(x, y, w, h, rgb565.White); err != nil {
						t.Fatal(err)
					}
					if p.OutOfView != 0 {
						t.Fatalf("FillRect(%d, %d, %d, %d) wrote %d pixels off the panel", x, y, w, h, p.OutOfView)
					}
					if p.Count(cmdRAMWR) == 0 {
						continue
					}
					if win := p.Window(); !win.In(d.Bounds()) || win.Empty() {
						t.Fatalf("FillRect(%d, %d, %d, %d) selected window %v", x, y, w, h, win)
					}
				}
			}
		}
	}
}

func TestFillRectLastWriteWins(t *testing.T) {
	d, p := newTestDev(t, nil)
	if err := d.FillRect(10, 10, 20, 20, rgb565.Red); err != nil {
		t.Fatal(err)
	}
	if err := d.FillRect(10, 10, 20, 20, rgb565.Blue); err != nil {
		t.Fatal(err)
	}
	for y := 10; y < 30; y++ {
		for x := 10; x < 30; x++ {
			if got := p.At(x, y); got != rgb565.Blue {
				t.Fatalf("At(%d, %d) = 0x%04X, want Blue", x, y, uint16(got))
			}
		}
	}
	if p.At(9, 10) != rgb565.Black || p.At(30, 29) != rgb565.Black {
		t.Error("fill leaked outside its rectangle")
	}
}

func TestDrawPixel(t *testing.T) {
	tests := []struct {
		name   string
		x, y   int
		writes bool
	}{
		{"origin", 0, 0, true},
		{"last pixel", 127, 159, true},
		{"x on boundary", 128, 0, false},
		{"y on boundary", 0, 160, false},
		{"negative x", -1, 5, false},
		{"negative y", 5, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, p := newTestDev(t, nil)
			if err := d.DrawPixel(tt.x, tt.y, rgb565.Magenta); err != nil {
				t.Fatal(err)
			}
			if !tt.writes {
				if len(p.Ops) != 0 {
					t.Errorf("%d transfers, want none", len(p.Ops))
				}
				return
			}
			if got := p.Window(); got != image.Rect(tt.x, tt.y, tt.x+1, tt.y+1) {
				t.Errorf("window = %v, want single pixel", got)
			}
			if n := len(lastData(p)); n != 2 {
				t.Errorf("streamed %d bytes, want 2", n)
			}
			if got := p.At(tt.x, tt.y); got != rgb565.Magenta {
				t.Errorf("At(%d, %d) = 0x%04X, want Magenta", tt.x, tt.y, uint16(got))
			}
		})
	}
}

func TestDrawTransportError(t *testing.T) {
	d, p := newTestDev(t, nil)
	p.Err = errors.New("bus fault")

	if err := d.FillScreen(rgb565.Red); !errors.Is(err, p.Err) {
		t.Errorf("FillScreen() = %v, want bus fault", err)
	}
	if err := d.FillRect(0, 0, 2, 2, rgb565.Red); !errors.Is(err, p.Err) {
		t.Errorf("FillRect() = %v, want bus fault", err)
	}
	if err := d.DrawPixel(0, 0, rgb565.Red); !errors.Is(err, p.Err) {
		t.Errorf("DrawPixel() = %v, want bus fault", err)
	}
	// Clipped-away operations never reach the transport.
	if err := d.DrawPixel(500, 0, rgb565.Red); err != nil {
		t.Errorf("off-panel DrawPixel() = %v, want nil", err)
	}
}
