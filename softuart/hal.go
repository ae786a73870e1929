// softuart/hal.go

package softuart

// Hardware capabilities consumed by the transceiver. Any pin and timer
// implementation satisfying these interfaces plugs in; the package ships
// machine.Pin adapters and two timer implementations, but the core never
// touches concrete chip drivers.

// Flusher is implemented by types that can flush buffered output to the
// underlying device. Transceiver satisfies it trivially.
type Flusher interface{ Flush() error }

// OutputPin is the transmit line. Both operations are fallible with an
// implementation-defined error.
type OutputPin interface {
	SetHigh() error
	SetLow() error
}

// InputPin is the receive line.
type InputPin interface {
	IsHigh() (bool, error)
}

// Timer paces the bit grid. The caller configures it before constructing a
// Transceiver; the period must be half the desired bit time (the timer runs
// at twice the symbol rate).
type Timer interface {
	// Reset restarts the period count from zero without altering the
	// configured period. It must not fail.
	Reset()

	// Poll reports whether a full period has elapsed since the last time it
	// returned true (or since Reset). It never blocks.
	Poll() bool

	// Nop burns one near-zero-cost step. Used for phase alignment only.
	Nop()
}
