package st7735

import (
	"math"

	"periph.io/x/devices/v3/st7735/font5x7"
	"periph.io/x/devices/v3/st7735/rgb565"
)

// Text grid used by DrawString. The pitch does not grow with the size
// multiplier, so text drawn with size > 1 overlaps its neighbours.
const (
	cellWidth  = font5x7.Width + 1 // 5 columns + 1 spacing
	cellHeight = 8                 // 7 rows + 1 spacing
	maxTextRow = 15
	maxTextCol = 20
)

// DrawChar renders ch with its top-left corner at (x, y), scaled by size.
//
// Set glyph bits are painted in fg. Clear bits are painted in bg unless
// bg == fg, which leaves the background untouched. Characters outside
// printable ASCII render as a blank cell. A glyph lying wholly off the
// display is skipped.
func (d *Dev) DrawChar(x, y int, ch rune, fg, bg rgb565.Color, size int) error {
	if d.halted {
		return ErrHalted
	}
	if size <= 0 ||
		x >= d.rect.Dx() || // Clip right
		y >= d.rect.Dy() || // Clip bottom
		advance(x, font5x7.Width, size) <= 0 || // Clip left
		advance(y, font5x7.Height, size) <= 0 { // Clip top
		return nil
	}

	g := font5x7.Lookup(ch)
	for i, line := range g {
		for j := 0; j < font5x7.Height; j, line = j+1, line>>1 {
			var c rgb565.Color
			switch {
			case line&1 != 0:
				c = fg
			case bg != fg:
				c = bg
			default:
				continue
			}
			var err error
			if size == 1 {
				err = d.DrawPixel(x+i, y+j, c)
			} else {
				err = d.FillRect(advance(x, i, size), advance(y, j, size), size, size, c)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// DrawString renders text on the character grid starting at cell (col, row).
//
// Cells are 6×8 pixels. The column advances by size after each character
// and rendering stops once it passes the last column. Rows beyond the last
// text row draw nothing. It returns the number of characters rendered;
// truncation is not an error.
func (d *Dev) DrawString(col, row int, text string, fg, bg rgb565.Color, size int) (int, error) {
	if d.halted {
		return 0, ErrHalted
	}
	if size <= 0 || row < 0 || row > maxTextRow || col < 0 {
		return 0, nil
	}
	n := 0
	for _, ch := range text {
		if col > maxTextCol {
			break
		}
		if err := d.DrawChar(col*cellWidth, row*cellHeight, ch, fg, bg, size); err != nil {
			return n, err
		}
		n++
		if size > maxTextCol-col {
			break
		}
		col += size
	}
	return n, nil
}

// advance returns origin + n*size for n >= 0 and size > 0, saturating at
// math.MaxInt. Saturated positions lie past any edge and get clipped.
func advance(origin, n, size int) int {
	if n == 0 {
		return origin
	}
	if size > math.MaxInt/n {
		return math.MaxInt
	}
	if origin > 0 && n*size > math.MaxInt-origin {
		return math.MaxInt
	}
	return origin + n*size
}
