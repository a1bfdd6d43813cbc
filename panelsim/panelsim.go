// Package panelsim is a software ST7735 controller.
//
// Panel decodes the byte stream a driver sends over SPI (opcode in command
// mode, parameters and pixels in data mode) and keeps the visible part of
// the controller RAM as an rgb565.Image. It records every transfer so tests
// can check exactly what went over the wire.
//
// Only the commands that affect addressing and display state are
// interpreted. MADCTL is recorded but does not remap the image.
package panelsim

import (
	"bytes"
	"fmt"
	"image"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/devices/v3/st7735/rgb565"
)

const (
	ramWidth  = 132
	ramHeight = 162
)

// Opcodes interpreted by Panel.
const (
	SWRESET = 0x01
	SLPIN   = 0x10
	SLPOUT  = 0x11
	NORON   = 0x13
	INVOFF  = 0x20
	INVON   = 0x21
	DISPOFF = 0x28
	DISPON  = 0x29
	CASET   = 0x2A
	RASET   = 0x2B
	RAMWR   = 0x2C
	MADCTL  = 0x36
	COLMOD  = 0x3A
)

// Op is one recorded transfer.
type Op struct {
	DC gpio.Level
	B  []byte
}

// Panel is a simulated controller. It implements st7735.Transport.
type Panel struct {
	// Ops holds every successful transfer in order.
	Ops []Op
	// Err, when set, makes Transmit fail without recording anything.
	Err error

	// Display state
	Sleeping  bool
	On        bool
	Inverted  bool
	Madctl    byte
	Colmod    byte
	// OutOfView counts pixels written to RAM outside the visible area.
	OutOfView int

	offX, offY int
	img        *rgb565.Image

	// Decoder state
	op             byte
	params         []byte
	writing        bool
	x0, x1, y0, y1 int
	px, py         int
	half           []byte
}

// New returns a powered-on, sleeping panel showing w×h pixels of RAM
// starting at column offX, row offY.
func New(w, h, offX, offY int) *Panel {
	p := &Panel{
		offX: offX,
		offY: offY,
		img:  rgb565.NewImage(image.Rect(0, 0, w, h)),
	}
	p.reset()
	return p
}

func (p *Panel) reset() {
	p.Sleeping = true
	p.On = false
	p.Inverted = false
	p.Madctl = 0
	p.Colmod = 0x06
	p.x0, p.x1 = 0, ramWidth-1
	p.y0, p.y1 = 0, ramHeight-1
	p.writing = false
	p.half = p.half[:0]
}

// Transmit implements st7735.Transport.
func (p *Panel) Transmit(dc gpio.Level, b []byte) error {
	if p.Err != nil {
		return p.Err
	}
	if len(b) == 0 {
		return fmt.Errorf("panelsim: empty %s transfer", dc)
	}
	p.Ops = append(p.Ops, Op{DC: dc, B: append([]byte(nil), b...)})
	if dc == gpio.Low {
		for _, op := range b {
			p.command(op)
		}
		return nil
	}
	if p.writing {
		p.pixels(b)
		return nil
	}
	p.params = append(p.params, b...)
	p.parameters()
	return nil
}

func (p *Panel) command(op byte) {
	p.op = op
	p.params = p.params[:0]
	p.writing = false
	switch op {
	case SWRESET:
		p.reset()
	case SLPIN:
		p.Sleeping = true
	case SLPOUT:
		p.Sleeping = false
	case INVOFF:
		p.Inverted = false
	case INVON:
		p.Inverted = true
	case DISPOFF:
		p.On = false
	case DISPON:
		p.On = true
	case RAMWR:
		p.writing = true
		p.px, p.py = p.x0, p.y0
		p.half = p.half[:0]
	}
}

func (p *Panel) parameters() {
	switch p.op {
	case CASET:
		if len(p.params) >= 4 {
			p.x0 = int(p.params[0])<<8 | int(p.params[1])
			p.x1 = int(p.params[2])<<8 | int(p.params[3])
		}
	case RASET:
		if len(p.params) >= 4 {
			p.y0 = int(p.params[0])<<8 | int(p.params[1])
			p.y1 = int(p.params[2])<<8 | int(p.params[3])
		}
	case MADCTL:
		p.Madctl = p.params[0]
	case COLMOD:
		p.Colmod = p.params[0]
	}
}

func (p *Panel) pixels(b []byte) {
	if len(p.half) == 1 {
		p.half = append(p.half, b[0])
		p.store(rgb565.Get(p.half))
		p.half = p.half[:0]
		b = b[1:]
	}
	for ; len(b) >= 2; b = b[2:] {
		p.store(rgb565.Get(b))
	}
	if len(b) == 1 {
		p.half = append(p.half, b[0])
	}
}

// store writes one pixel at the RAM write pointer and advances it row-major
// within the current window, wrapping at the end.
func (p *Panel) store(c rgb565.Color) {
	x, y := p.px-p.offX, p.py-p.offY
	if (image.Point{X: x, Y: y}).In(p.img.Rect) {
		p.img.SetRGB565(x, y, c)
	} else {
		p.OutOfView++
	}
	p.px++
	if p.px > p.x1 {
		p.px = p.x0
		p.py++
		if p.py > p.y1 {
			p.py = p.y0
		}
	}
}

// Image returns the visible area. The returned image is live.
func (p *Panel) Image() *rgb565.Image {
	return p.img
}

// At returns the visible pixel at (x, y).
func (p *Panel) At(x, y int) rgb565.Color {
	return p.img.RGB565At(x, y)
}

// Window returns the current address window in visible coordinates.
func (p *Panel) Window() image.Rectangle {
	return image.Rect(p.x0-p.offX, p.y0-p.offY, p.x1-p.offX+1, p.y1-p.offY+1)
}

// Commands returns every opcode received, in order.
func (p *Panel) Commands() []byte {
	var out []byte
	for _, op := range p.Ops {
		if op.DC == gpio.Low {
			out = append(out, op.B...)
		}
	}
	return out
}

// Count returns how many times op was received.
func (p *Panel) Count(op byte) int {
	return bytes.Count(p.Commands(), []byte{op})
}

// Stream returns all recorded transfers flattened, each prefixed with
// 'C' or 'D' for its D/C level.
func (p *Panel) Stream() []byte {
	var out []byte
	for _, op := range p.Ops {
		tag := byte('D')
		if op.DC == gpio.Low {
			tag = 'C'
		}
		out = append(out, tag)
		out = append(out, op.B...)
	}
	return out
}

// ClearLog forgets recorded transfers but keeps the panel state.
func (p *Panel) ClearLog() {
	p.Ops = nil
	p.OutOfView = 0
}
