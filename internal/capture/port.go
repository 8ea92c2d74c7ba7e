// Package capture feeds a PPM parser from a capture bridge: a small
// microcontroller that timestamps rising edges and streams each timestamp
// over a serial link as a 4-byte little-endian microsecond value.
package capture

import (
	"io"

	"go.bug.st/serial"
)

// Port is the minimal serial interface the reader needs.
type Port interface {
	io.ReadWriter
	io.Closer
}

// Open opens the serial device at path with 8N1 framing at the given baud
// rate.
func Open(path string, baudRate int) (Port, error) {
	mode := &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	return serial.Open(path, mode)
}
