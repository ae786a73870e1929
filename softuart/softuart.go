// softuart/softuart.go

// Package softuart emulates an asynchronous serial transceiver (8N1: one
// start bit, eight data bits LSB-first, one stop bit, no parity) in
// software, by toggling a GPIO output and sampling a GPIO input on a grid
// derived from a periodic timer. No UART silicon is involved, which makes
// it usable on pins without a hardware USART mux option.
//
// The timer must be configured to twice the desired symbol rate before the
// transceiver is constructed. Both WriteByte and ReadByte are fully
// synchronous: the calling context is occupied for the whole frame, roughly
// ten bit cells. There is no buffering, no interrupt handling and no
// full-duplex operation; receive must be invoked already synchronized to a
// start condition (typically from an edge-triggered interrupt or a polling
// loop on the receive line).
package softuart

const (
	dataBits = 8

	// Number of Nop steps used to pull the drive/sample instant away from
	// the bit edge and toward the cell centre. The timer period is half a
	// bit cell, so a full period wait here would overshoot.
	phaseAlignSteps = 5
)

// Transceiver is a bit-banged serial port over one output pin, one input
// pin and one periodic timer. It owns all three exclusively: no other code
// may drive the pins or restart the timer while the Transceiver is in use.
// The zero value is not usable; construct with New.
type Transceiver struct {
	tx    OutputPin
	rx    InputPin
	timer Timer

	stats Stats
}

// New returns a Transceiver over the given pins and timer. The timer must
// already be running with a period of half the desired bit time; the output
// pin should idle high.
func New(tx OutputPin, rx InputPin, timer Timer) *Transceiver {
	return &Transceiver{tx: tx, rx: rx, timer: timer}
}

func (t *Transceiver) resetTimer() {
	t.timer.Reset()
}

// waitPeriod blocks until one full timer period has elapsed, by busy-polling
// the timer. The loop is unbounded: a stalled timer stalls the caller.
func (t *Transceiver) waitPeriod() {
	for !t.timer.Poll() {
	}
	t.dbgWait()
}

func (t *Transceiver) phaseAlign() {
	for i := 0; i < phaseAlignSteps; i++ {
		t.timer.Nop()
	}
}

// WriteByte transmits one byte: start bit low, eight data bits LSB-first,
// stop bit high, one timer wait per bit after the initial phase alignment.
// It blocks for the whole frame. On a pin failure it returns a *BusError
// immediately, leaving the frame incomplete on the wire.
func (t *Transceiver) WriteByte(b byte) error {
	if err := t.tx.SetLow(); err != nil { // start bit
		t.dbgBusError()
		return &BusError{Err: err}
	}
	t.resetTimer()
	t.phaseAlign()
	t.waitPeriod()

	for bit := 0; bit < dataBits; bit++ {
		var err error
		if b&1 == 1 {
			err = t.tx.SetHigh()
		} else {
			err = t.tx.SetLow()
		}
		if err != nil {
			t.dbgBusError()
			return &BusError{Err: err}
		}
		b >>= 1
		t.waitPeriod()
	}

	if err := t.tx.SetHigh(); err != nil { // stop bit
		t.dbgBusError()
		return &BusError{Err: err}
	}
	t.waitPeriod()
	t.dbgSent()
	return nil
}

// ReadByte receives one byte. The caller must already be synchronized to a
// start condition: if the input pin reads high the call fails with
// ErrInvalidInterrupt before any timer activity. The stop bit is spanned
// but its level is not verified.
func (t *Transceiver) ReadByte() (byte, error) {
	high, err := t.rx.IsHigh()
	if err != nil {
		t.dbgBusError()
		return 0, &BusError{Err: err}
	}
	if high {
		t.dbgRejected()
		return 0, ErrInvalidInterrupt
	}

	t.resetTimer()
	t.phaseAlign()
	t.waitPeriod()

	var data byte
	for bit := 0; bit < dataBits; bit++ {
		data >>= 1
		high, err := t.rx.IsHigh()
		if err != nil {
			t.dbgBusError()
			return 0, &BusError{Err: err}
		}
		if high {
			data |= 0x80
		}
		t.waitPeriod()
	}

	// Span the stop bit.
	t.waitPeriod()
	t.dbgReceived()
	return data, nil
}

// Write transmits p one frame per byte, back to back. It stops on the first
// error and returns the number of bytes fully framed before it. Nothing is
// buffered; Write has returned only when the last bit is on the wire.
func (t *Transceiver) Write(p []byte) (int, error) {
	for i, b := range p {
		if err := t.WriteByte(b); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// Flush implements the Flusher convention and always succeeds: transmission
// is fully synchronous, so there is never anything left to drain.
func (t *Transceiver) Flush() error { return nil }
