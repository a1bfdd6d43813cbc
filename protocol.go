package st7735

import (
	"fmt"
	"time"
)

// Controller opcodes (from the ST7735 datasheet).
const (
	cmdSWRESET = 0x01 // Software reset
	cmdSLPOUT  = 0x11 // Sleep out
	cmdNORON   = 0x13 // Normal display mode on
	cmdINVOFF  = 0x20 // Display inversion off
	cmdINVON   = 0x21 // Display inversion on
	cmdDISPOFF = 0x28 // Display off
	cmdDISPON  = 0x29 // Display on
	cmdCASET   = 0x2A // Column address set
	cmdRASET   = 0x2B // Row address set
	cmdRAMWR   = 0x2C // Memory write
	cmdMADCTL  = 0x36 // Memory data access control
	cmdCOLMOD  = 0x3A // Interface pixel format

	cmdFRMCTR1 = 0xB1 // Frame rate control, normal mode
	cmdFRMCTR2 = 0xB2 // Frame rate control, idle mode
	cmdFRMCTR3 = 0xB3 // Frame rate control, partial mode
	cmdINVCTR  = 0xB4 // Display inversion control
	cmdPWCTR1  = 0xC0 // Power control 1
	cmdPWCTR2  = 0xC1
	cmdPWCTR3  = 0xC2
	cmdPWCTR4  = 0xC3
	cmdPWCTR5  = 0xC4
	cmdVMCTR1  = 0xC5 // VCOM control 1
	cmdGMCTRP1 = 0xE0 // Gamma, positive polarity
	cmdGMCTRN1 = 0xE1 // Gamma, negative polarity
)

const (
	// resetDelay is held on each edge of the hardware reset pulse.
	resetDelay = 500 * time.Millisecond
	// settleDelay follows every command record flagged with delay.
	settleDelay = 100 * time.Millisecond
)

// command is one record of the initialization sequence.
type command struct {
	op     byte
	params []byte
	delay  bool
}

// initSequence returns the power-on command list for a panel whose visible
// area is w×h pixels starting at column offX, row offY of controller RAM.
func initSequence(w, h, offX, offY int) []command {
	return []command{
		{op: cmdSWRESET, delay: true},
		{op: cmdSLPOUT, delay: true},
		// Rate = fosc/(1x2+40) * (LINE+2C+2D)
		{op: cmdFRMCTR1, params: []byte{0x01, 0x2C, 0x2D}},
		{op: cmdFRMCTR2, params: []byte{0x01, 0x2C, 0x2D}},
		// Dot inversion mode, then line inversion mode.
		{op: cmdFRMCTR3, params: []byte{0x01, 0x2C, 0x2D, 0x01, 0x2C, 0x2D}},
		{op: cmdINVCTR, params: []byte{0x07}},
		// GVDD -4.6V, auto mode.
		{op: cmdPWCTR1, params: []byte{0xA2, 0x02, 0x84}},
		{op: cmdPWCTR2, params: []byte{0xC5}},
		{op: cmdPWCTR3, params: []byte{0x0A, 0x00}},
		{op: cmdPWCTR4, params: []byte{0x8A, 0x2A}},
		{op: cmdPWCTR5, params: []byte{0x8A, 0xEE}},
		{op: cmdVMCTR1, params: []byte{0x0E}},
		{op: cmdINVOFF},
		// MY|MX|BGR.
		{op: cmdMADCTL, params: []byte{0xC8}},
		// 16 bits per pixel.
		{op: cmdCOLMOD, params: []byte{0x05}},
		{op: cmdCASET, params: []byte{0x00, byte(offX), 0x00, byte(w - 1 + offX)}},
		{op: cmdRASET, params: []byte{0x00, byte(offY), 0x00, byte(h - 1 + offY)}},
		{op: cmdGMCTRP1, params: []byte{
			0x02, 0x1C, 0x07, 0x12, 0x37, 0x32, 0x29, 0x2D,
			0x29, 0x25, 0x2B, 0x39, 0x00, 0x01, 0x03, 0x10,
		}},
		{op: cmdGMCTRN1, params: []byte{
			0x03, 0x1D, 0x07, 0x06, 0x2E, 0x2C, 0x29, 0x2D,
			0x2E, 0x2E, 0x37, 0x3F, 0x00, 0x00, 0x02, 0x10,
		}},
		{op: cmdNORON, delay: true},
		{op: cmdDISPON, delay: true},
	}
}

// sendCommand sends a single opcode.
func (d *Dev) sendCommand(op byte) error {
	if err := d.t.Transmit(Command, []byte{op}); err != nil {
		return fmt.Errorf("st7735: command 0x%02X: %w", op, err)
	}
	return nil
}

// sendData sends parameter or pixel bytes. An empty slice sends nothing.
func (d *Dev) sendData(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if err := d.t.Transmit(Data, data); err != nil {
		return fmt.Errorf("st7735: data (%d bytes): %w", len(data), err)
	}
	return nil
}

// send sends an opcode followed by its parameters and waits if the record
// asks for it.
func (d *Dev) send(c command) error {
	if err := d.sendCommand(c.op); err != nil {
		return err
	}
	if err := d.sendData(c.params); err != nil {
		return err
	}
	if c.delay {
		d.delay(settleDelay)
	}
	return nil
}

// runInitSequence replays the initialization records in order.
func (d *Dev) runInitSequence() error {
	for _, c := range initSequence(d.rect.Dx(), d.rect.Dy(), d.offsetX, d.offsetY) {
		if err := d.send(c); err != nil {
			return err
		}
	}
	return nil
}

// selectWindow sets the inclusive address window (x0,y0)-(x1,y1) and opens
// RAM for writing. Coordinates must already be clipped to the panel.
func (d *Dev) selectWindow(x0, y0, x1, y1 int) error {
	ox, oy := d.offsetX, d.offsetY
	if err := d.send(command{op: cmdCASET, params: []byte{0x00, byte(x0 + ox), 0x00, byte(x1 + ox)}}); err != nil {
		return err
	}
	if err := d.send(command{op: cmdRASET, params: []byte{0x00, byte(y0 + oy), 0x00, byte(y1 + oy)}}); err != nil {
		return err
	}
	return d.sendCommand(cmdRAMWR)
}

// writeRect streams pixel data into the w×h rectangle at (x, y).
func (d *Dev) writeRect(x, y, w, h int, pixels []byte) error {
	if err := d.selectWindow(x, y, x+w-1, y+h-1); err != nil {
		return err
	}
	return d.sendData(pixels)
}
