// softuart/errors.go

package softuart

import "errors"

// Predefined error values.
var (
	// ErrInvalidInterrupt is returned by ReadByte when the receive line reads
	// high at call time. A start bit is signalled by a low level, so a high
	// level means the caller invoked receive outside a start-bit window.
	ErrInvalidInterrupt = errors.New("softuart: receive called outside a start-bit window")

	// ErrFixedBaud is returned by UART.Configure when a baud rate is
	// requested. The symbol rate is set by the external timer alone.
	ErrFixedBaud = errors.New("softuart: symbol rate is fixed by the timer period")
)

// BusError wraps a failed pin operation. The frame in progress is abandoned
// and the line is left in an unknown state; callers must re-establish
// synchronization (e.g. wait for an idle line) before retrying.
type BusError struct {
	Err error
}

func (e *BusError) Error() string { return "softuart: bus error: " + e.Err.Error() }

func (e *BusError) Unwrap() error { return e.Err }
