package saber

import (
	"fmt"
	"time"

	"go.bug.st/serial"

	"github.com/moffa90/go-anima/protocol"
)

// Transport is the byte-level connection to a saber. A go.bug.st/serial port
// satisfies it directly; tests and examples substitute in-memory
// implementations.
//
// A Transport is exclusively owned by one Controller. The protocol has no
// multiplexing, so all reads and writes are strictly sequential.
type Transport interface {
	// Read fills p with available bytes. A return of (0, nil) means the
	// read timeout expired with nothing received.
	Read(p []byte) (int, error)

	// Write sends bytes to the saber.
	Write(p []byte) (int, error)

	// SetReadTimeout changes how long Read blocks before giving up.
	SetReadTimeout(t time.Duration) error

	// Drain blocks until all written bytes have left the host buffer.
	Drain() error

	// Close releases the underlying port.
	Close() error
}

// openPort opens a serial connection with the fixed Anima frame parameters:
// 1152000 baud, 8 data bits, no parity, one stop bit, no flow control.
func openPort(name string, readTimeout time.Duration) (Transport, error) {
	mode := &serial.Mode{
		BaudRate: protocol.BaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(name, mode)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}

	if err := port.SetReadTimeout(readTimeout); err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("set read timeout on %s: %w", name, err)
	}

	// Stale bytes from a previous session would desynchronize the first
	// exchange.
	if err := port.ResetInputBuffer(); err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("reset input buffer on %s: %w", name, err)
	}

	return port, nil
}
