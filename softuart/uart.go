// softuart/uart.go

package softuart

import "tinygo.org/x/drivers"

// Config mirrors the shape of a UART configuration for callers that expect
// a Configure step. The only field is the baud rate, and the only accepted
// value is zero: the symbol rate is fixed by the external timer.
type Config struct {
	BaudRate uint32
}

// UART adapts a Transceiver to the drivers.UART interface, so the
// bit-banged link can stand in wherever a tinygo.org/x/drivers device
// driver expects a UART.
//
// The adapter inherits the transceiver's limits: Write blocks until the
// last bit is on the wire, Read requires start-bit synchronization, and
// nothing is ever buffered.
type UART struct {
	t *Transceiver
}

var _ drivers.UART = (*UART)(nil)

// NewUART wraps t.
func NewUART(t *Transceiver) *UART { return &UART{t: t} }

// Configure validates cfg. A non-zero BaudRate returns ErrFixedBaud; rate
// changes require reconfiguring the timer the caller supplied.
func (u *UART) Configure(cfg Config) error {
	if cfg.BaudRate != 0 {
		return ErrFixedBaud
	}
	return nil
}

// Buffered implements drivers.UART. A byte exists only for the duration of
// one call, so there is never buffered data.
func (u *UART) Buffered() int { return 0 }

// Read implements io.Reader by receiving a single frame into p[0]. It
// carries the receive path's contract: the caller must already be
// synchronized to a start condition, or Read fails with
// ErrInvalidInterrupt.
func (u *UART) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	b, err := u.t.ReadByte()
	if err != nil {
		return 0, err
	}
	p[0] = b
	return 1, nil
}

// ReadByte receives a single frame.
func (u *UART) ReadByte() (byte, error) { return u.t.ReadByte() }

func (u *UART) Write(data []byte) (n int, err error) { return u.t.Write(data) }
