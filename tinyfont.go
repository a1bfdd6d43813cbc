package st7735

import (
	"image/color"

	"periph.io/x/devices/v3/st7735/rgb565"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// FontDisplay exposes a Dev as a drivers.Displayer so that tinyfont fonts
// can be rendered on it. Pixels are written immediately; the first error
// stops further writes and is reported by Display.
type FontDisplay struct {
	d   *Dev
	err error
}

// FontDisplay returns a drivers.Displayer view of d.
func (d *Dev) FontDisplay() *FontDisplay {
	return &FontDisplay{d: d}
}

// Size implements drivers.Displayer.
func (f *FontDisplay) Size() (x, y int16) {
	return int16(f.d.rect.Dx()), int16(f.d.rect.Dy())
}

// SetPixel implements drivers.Displayer.
func (f *FontDisplay) SetPixel(x, y int16, c color.RGBA) {
	if f.err != nil {
		return
	}
	f.err = f.d.DrawPixel(int(x), int(y), rgb565.New(c.R, c.G, c.B))
}

// FillRectangle paints a rectangle with the same clipping as Dev.FillRect.
func (f *FontDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if f.err != nil {
		return f.err
	}
	f.err = f.d.FillRect(int(x), int(y), int(width), int(height), rgb565.New(c.R, c.G, c.B))
	return f.err
}

// Display implements drivers.Displayer. Nothing is buffered, so it only
// reports the first write error.
func (f *FontDisplay) Display() error {
	return f.err
}

var _ drivers.Displayer = &FontDisplay{}

// WriteLine renders text in a tinyfont font with its baseline at y.
func (d *Dev) WriteLine(font tinyfont.Fonter, x, y int16, text string, c color.RGBA) error {
	if d.halted {
		return ErrHalted
	}
	f := d.FontDisplay()
	tinyfont.WriteLine(f, font, x, y, text, c)
	return f.Display()
}
