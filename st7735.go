package st7735

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/devices/v3/st7735/rgb565"
)

// Controller RAM is 132×162; the visible glass is a window into it.
const (
	ramWidth  = 132
	ramHeight = 162
)

// ErrHalted is returned by every operation after Halt.
var ErrHalted = errors.New("st7735: halted")

// Opts is the configuration for the ST7735 display.
type Opts struct {
	// Visible area in pixels
	W int // Width (default: 128)
	H int // Height (default: 160)

	// Position of the visible area in controller RAM. These depend on the
	// module: the common 1.8" 128x160 board needs 2 and 1. Unlike W and H,
	// zero is not replaced by a default since some modules need it; start
	// from DefaultOpts for the 1.8" board. A nil *Opts selects DefaultOpts.
	OffsetX int
	OffsetY int

	// Optional control pins, nil if not wired
	RST       gpio.PinOut // Reset, active low
	Backlight gpio.PinOut // Backlight enable, active high

	// Delay waits between reset edges and after settling commands.
	// Default: time.Sleep.
	Delay func(time.Duration)
}

// DefaultOpts returns the options for the 1.8" 128x160 module, including
// its 2 column and 1 row RAM offset. A zero Opts{} keeps 128x160 but uses no
// offset.
func DefaultOpts() *Opts {
	return &Opts{W: 128, H: 160, OffsetX: 2, OffsetY: 1}
}

// Dev is the device handle for the ST7735 display.
//
// Dev is not safe for concurrent use.
type Dev struct {
	t   Transport
	rst gpio.PinOut // Reset pin (optional)
	bl  gpio.PinOut // Backlight pin (optional)

	delay func(time.Duration)

	// Display geometry
	rect             image.Rectangle
	offsetX, offsetY int

	// buffer stages every pixel stream; it holds one full frame.
	buffer []byte

	halted bool
}

// NewSPI creates a new ST7735 device connected via SPI.
//
// The SPI port is configured for 10MHz, Mode0 (CPOL=0, CPHA=0), 8-bit transfers.
// The dc (Data/Command) GPIO pin must be provided and configured as an output.
//
// opts can be nil to use DefaultOpts.
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if dc == nil {
		return nil, errors.New("st7735: DC pin is required")
	}
	if err := validate(opts); err != nil {
		return nil, err
	}
	c, err := p.Connect(10*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("st7735: failed to connect: %w", err)
	}
	return New(newSPITransport(c, dc), opts)
}

// New creates a new ST7735 device on an arbitrary transport, resets it and
// runs the power-on sequence.
//
// opts can be nil to use DefaultOpts.
func New(t Transport, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = DefaultOpts()
	}
	if err := validate(opts); err != nil {
		return nil, err
	}
	w, h := opts.W, opts.H
	if w == 0 {
		w = 128
	}
	if h == 0 {
		h = 160
	}
	d := &Dev{
		t:       t,
		rst:     opts.RST,
		bl:      opts.Backlight,
		delay:   opts.Delay,
		rect:    image.Rect(0, 0, w, h),
		offsetX: opts.OffsetX,
		offsetY: opts.OffsetY,
		buffer:  make([]byte, w*h*2),
	}
	if d.delay == nil {
		d.delay = time.Sleep
	}
	if err := d.init(); err != nil {
		return nil, err
	}
	return d, nil
}

func validate(opts *Opts) error {
	if opts == nil {
		return nil
	}
	w, h := opts.W, opts.H
	if w == 0 {
		w = 128
	}
	if h == 0 {
		h = 160
	}
	if w < 0 || h < 0 {
		return errors.New("st7735: width and height must be positive")
	}
	if opts.OffsetX < 0 || opts.OffsetY < 0 {
		return errors.New("st7735: offsets must not be negative")
	}
	if w+opts.OffsetX > ramWidth {
		return fmt.Errorf("st7735: width %d at column offset %d exceeds %d RAM columns", w, opts.OffsetX, ramWidth)
	}
	if h+opts.OffsetY > ramHeight {
		return fmt.Errorf("st7735: height %d at row offset %d exceeds %d RAM rows", h, opts.OffsetY, ramHeight)
	}
	return nil
}

// init resets the controller, sends the initialization sequence and turns
// the backlight on.
func (d *Dev) init() error {
	// The controller may not leave reset if either delay is cut short.
	if d.rst != nil {
		if err := d.rst.Out(gpio.Low); err != nil {
			return fmt.Errorf("st7735: failed to pull RST low: %w", err)
		}
		d.delay(resetDelay)
		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("st7735: failed to pull RST high: %w", err)
		}
		d.delay(resetDelay)
	}

	if err := d.runInitSequence(); err != nil {
		return err
	}

	if d.bl != nil {
		if err := d.bl.Out(gpio.High); err != nil {
			return fmt.Errorf("st7735: failed to enable backlight: %w", err)
		}
	}
	return nil
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return rgb565.Model
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Write writes a raw frame to the display, two bytes per pixel, low byte
// first, row-major. The data must be exactly d.Bounds().Dx() * d.Bounds().Dy() * 2 bytes.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, ErrHalted
	}
	if len(pixels) != len(d.buffer) {
		return 0, errors.New("st7735: invalid buffer size")
	}
	if err := d.writeRect(0, 0, d.rect.Dx(), d.rect.Dy(), pixels); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// Draw draws src onto the display. The dst rectangle is clipped to the
// display bounds and sent as a single address window.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return ErrHalted
	}

	r := dst.Intersect(d.rect)
	if r.Empty() {
		return nil
	}
	sp = sp.Add(r.Min.Sub(dst.Min))

	// Fast path: a full frame already in wire format
	if img, ok := src.(*rgb565.Image); ok {
		if r == d.rect && sp == img.Rect.Min && img.Rect.Size() == d.rect.Size() && img.Stride == d.rect.Dx()*2 {
			return d.writeRect(0, 0, r.Dx(), r.Dy(), img.Pix[:len(d.buffer)])
		}
	}

	n := r.Dx() * r.Dy() * 2
	stage := &rgb565.Image{
		Pix:    d.buffer[:n],
		Stride: r.Dx() * 2,
		Rect:   r,
	}
	draw.Draw(stage, r, src, sp, draw.Src)
	return d.writeRect(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), stage.Pix)
}

// Invert turns color inversion on or off.
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return ErrHalted
	}
	op := byte(cmdINVOFF)
	if invert {
		op = cmdINVON
	}
	return d.sendCommand(op)
}

// Halt turns the display and the backlight off.
// After a successful Halt, every operation returns ErrHalted. A failed Halt
// leaves the device usable and can be retried.
func (d *Dev) Halt() error {
	if d.halted {
		return nil
	}
	if err := d.sendCommand(cmdDISPOFF); err != nil {
		return err
	}
	if d.bl != nil {
		if err := d.bl.Out(gpio.Low); err != nil {
			return fmt.Errorf("st7735: failed to disable backlight: %w", err)
		}
	}
	d.halted = true
	return nil
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("st7735.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}

var _ display.Drawer = &Dev{}
