// Package rgb565 provides a 16-bit RGB-565 color and image format for the ST7735 display.
package rgb565

import (
	"image"
	"image/color"
)

// Color is a 16-bit RGB-565 color: 5 bits red, 6 bits green, 5 bits blue.
type Color uint16

// Common colors.
const (
	Black   Color = 0x0000
	White   Color = 0xFFFF
	Red     Color = 0xF800
	Green   Color = 0x07E0
	Blue    Color = 0x001F
	Cyan    Color = 0x07FF
	Magenta Color = 0xF81F
	Yellow  Color = 0xFFE0
	Gray    Color = 0x8410
	Olive   Color = 0x8400
)

// Palette holds the named colors for one channel wiring of the panel.
type Palette struct {
	Black, White, Red, Green, Blue, Cyan, Magenta, Yellow, Gray, Olive Color
}

// RGB is the palette of the common R-G-B 5-6-5 modules. It matches the
// named constants.
var RGB = Palette{
	Black: Black, White: White, Red: Red, Green: Green, Blue: Blue,
	Cyan: Cyan, Magenta: Magenta, Yellow: Yellow, Gray: Gray, Olive: Olive,
}

// RBG is the palette of modules wired R-B-G 5-6-5, where the 6-bit field
// drives blue and the low 5 bits drive green.
var RBG = Palette{
	Black:   0x0000,
	White:   0xFFFF,
	Red:     0xF800,
	Green:   0x001F,
	Blue:    0x07E0,
	Cyan:    0x07FF,
	Magenta: 0xFFE0,
	Yellow:  0xF81F,
	Gray:    0x8410,
	Olive:   0x8011,
}

// New packs 8-bit channels into a Color, dropping the low bits.
func New(r, g, b uint8) Color {
	rr := Color(r>>3) & 0x1F
	gg := Color(g>>2) & 0x3F
	bb := Color(b>>3) & 0x1F
	return rr<<11 | gg<<5 | bb
}

// RGB888 expands the color back to 8-bit channels.
func (c Color) RGB888() (r, g, b uint8) {
	rr := uint32(c>>11) & 0x1F
	gg := uint32(c>>5) & 0x3F
	bb := uint32(c) & 0x1F
	return uint8(rr * 255 / 31), uint8(gg * 255 / 63), uint8(bb * 255 / 31)
}

// RGBA implements color.Color. The color is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.RGB888()
	r = uint32(r8) * 0x101
	g = uint32(g8) * 0x101
	b = uint32(b8) * 0x101
	return r, g, b, 0xFFFF
}

// Put writes c into b[0:2], low byte first.
func (c Color) Put(b []byte) {
	_ = b[1]
	b[0] = byte(c)
	b[1] = byte(c >> 8)
}

// Get reads a Color stored by Put.
func Get(b []byte) Color {
	_ = b[1]
	return Color(b[0]) | Color(b[1])<<8
}

// Fill repeats the encoding of c over b. A trailing odd byte is left untouched.
func Fill(b []byte, c Color) {
	if len(b) < 2 {
		return
	}
	c.Put(b)
	// Doubling copy: each pass duplicates what is already filled.
	for n := 2; n < len(b)&^1; n *= 2 {
		copy(b[n:len(b)&^1], b[:n])
	}
}

func toRGB565(c color.Color) color.Color {
	if v, ok := c.(Color); ok {
		return v
	}
	r, g, b, _ := c.RGBA()
	return New(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// Model converts colors to Color.
var Model = color.ModelFunc(toRGB565)

// Image is an RGB-565 image with pixels stored low byte first.
type Image struct {
	Pix    []byte          // Pixel data (2 bytes per pixel)
	Stride int             // Bytes per row
	Rect   image.Rectangle // Image bounds
}

// NewImage creates a new Image with the specified bounds.
func NewImage(r image.Rectangle) *Image {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return &Image{Rect: r}
	}
	return &Image{
		Pix:    make([]byte, w*h*2),
		Stride: w * 2,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *Image) ColorModel() color.Model {
	return Model
}

// Bounds returns the image bounds.
func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

// At implements image.Image.
func (p *Image) At(x, y int) color.Color {
	return p.RGB565At(x, y)
}

// RGB565At returns the Color of the pixel at (x, y).
func (p *Image) RGB565At(x, y int) Color {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Black
	}
	i := p.PixOffset(x, y)
	return Get(p.Pix[i:])
}

// Set implements draw.Image.
func (p *Image) Set(x, y int, c color.Color) {
	p.SetRGB565(x, y, Model.Convert(c).(Color))
}

// SetRGB565 sets the pixel at (x, y) without color conversion.
func (p *Image) SetRGB565(x, y int, c Color) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	c.Put(p.Pix[i:])
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (p *Image) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*2
}
