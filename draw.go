package st7735

import "periph.io/x/devices/v3/st7735/rgb565"

// FillScreen paints the whole display with c.
func (d *Dev) FillScreen(c rgb565.Color) error {
	if d.halted {
		return ErrHalted
	}
	rgb565.Fill(d.buffer, c)
	return d.writeRect(0, 0, d.rect.Dx(), d.rect.Dy(), d.buffer)
}

// FillRect paints the w×h rectangle at (x, y) with c.
//
// A rectangle that starts off the display is dropped entirely; one that
// starts on the display and overflows the right or bottom edge is shrunk to
// fit. Nothing is sent when the result is empty.
func (d *Dev) FillRect(x, y, w, h int, c rgb565.Color) error {
	if d.halted {
		return ErrHalted
	}
	width, height := d.rect.Dx(), d.rect.Dy()
	if x < 0 || y < 0 || x >= width || y >= height {
		return nil
	}
	if w > width-x {
		w = width - x
	}
	if h > height-y {
		h = height - y
	}
	if w <= 0 || h <= 0 {
		return nil
	}
	n := w * h * 2
	rgb565.Fill(d.buffer[:n], c)
	return d.writeRect(x, y, w, h, d.buffer[:n])
}

// DrawPixel sets the pixel at (x, y) to c. Coordinates off the display are
// ignored.
func (d *Dev) DrawPixel(x, y int, c rgb565.Color) error {
	if d.halted {
		return ErrHalted
	}
	if x < 0 || y < 0 || x >= d.rect.Dx() || y >= d.rect.Dy() {
		return nil
	}
	c.Put(d.buffer[:2])
	return d.writeRect(x, y, 1, 1, d.buffer[:2])
}
