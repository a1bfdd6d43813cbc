package st7735

import (
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
)

// D/C levels for Transport.Transmit.
const (
	Command = gpio.Low  // Bytes are an opcode
	Data    = gpio.High // Bytes are parameters or pixels
)

// Transport moves bytes to the controller.
//
// Transmit must drive the D/C line to dc before the first clock edge, assert
// chip select for the duration of the transfer and block until every byte
// is clocked out. The driver never calls Transmit with an empty slice.
type Transport interface {
	Transmit(dc gpio.Level, b []byte) error
}

// spiTransport implements Transport over a periph.io SPI connection and a
// GPIO D/C pin. Chip select is handled by the SPI port.
type spiTransport struct {
	c  conn.Conn
	dc gpio.PinOut
	// maxTxSize is the largest single Tx the connection accepts.
	maxTxSize int
}

func newSPITransport(c conn.Conn, dc gpio.PinOut) *spiTransport {
	// Use the connection's limit if it has one, otherwise a conservative
	// 4096 bytes.
	maxTxSize := 0
	if limits, ok := c.(conn.Limits); ok {
		maxTxSize = limits.MaxTxSize()
	}
	if maxTxSize <= 0 {
		maxTxSize = 4096
	}
	return &spiTransport{c: c, dc: dc, maxTxSize: maxTxSize}
}

func (s *spiTransport) Transmit(dc gpio.Level, b []byte) error {
	if len(b) == 0 {
		return nil
	}
	if err := s.dc.Out(dc); err != nil {
		return fmt.Errorf("failed to drive DC %s: %w", dc, err)
	}
	for len(b) != 0 {
		chunk := b
		if len(chunk) > s.maxTxSize {
			chunk = b[:s.maxTxSize]
		}
		if err := s.c.Tx(chunk, nil); err != nil {
			return err
		}
		b = b[len(chunk):]
	}
	return nil
}

func (s *spiTransport) String() string {
	return fmt.Sprintf("%s/DC:%s", s.c, s.dc)
}
