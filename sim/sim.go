// sim/sim.go

// Package sim models the serial wire for exercising the softuart
// transceiver without hardware. A Line stores one logic level per timer
// cell; a TxPin records levels onto it, an RxPin replays them, and a Timer
// elapses instantly while advancing the shared cell counter. All three run
// on one goroutine, mirroring the driver's execution model.
package sim

import "errors"

// ErrInjected is the pin fault produced by FailOn.
var ErrInjected = errors.New("sim: injected pin fault")

// Line is a single logic-level wire sampled on the timer grid. It idles
// high, like a pulled-up serial line.
type Line struct {
	cell   int
	levels []bool
}

// NewLine returns an idle-high wire with no recorded cells.
func NewLine() *Line {
	return &Line{}
}

// NewTimer returns a Timer bound to the line's cell counter.
func (l *Line) NewTimer() *Timer { return &Timer{line: l} }

// NewTxPin returns an output pin that records drives onto the line.
func (l *Line) NewTxPin() *TxPin { return &TxPin{line: l} }

// NewRxPin returns an input pin that samples the recorded levels.
func (l *Line) NewRxPin() *RxPin { return &RxPin{line: l} }

// Rewind moves the cell counter back to the start of the recording, so a
// captured transmission can be replayed into a receiver.
func (l *Line) Rewind() { l.cell = 0 }

// Cell returns the current position on the grid.
func (l *Line) Cell() int { return l.cell }

// Levels returns the recorded level per cell, in order.
func (l *Line) Levels() []bool {
	out := make([]bool, len(l.levels))
	copy(out, l.levels)
	return out
}

// SetLevels replaces the recording with a hand-built schedule and rewinds.
func (l *Line) SetLevels(levels []bool) {
	l.levels = append(l.levels[:0], levels...)
	l.cell = 0
}

func (l *Line) drive(level bool) {
	// Fill any cells skipped since the last drive with the held level.
	for len(l.levels) <= l.cell {
		held := true
		if n := len(l.levels); n > 0 {
			held = l.levels[n-1]
		}
		l.levels = append(l.levels, held)
	}
	l.levels[l.cell] = level
}

func (l *Line) sample() bool {
	if l.cell < len(l.levels) {
		return l.levels[l.cell]
	}
	return true // idle high past the recording
}

// Timer implements the softuart timer capability. Every Poll reports an
// elapsed period immediately and moves the line forward one cell, so a
// frame plays out in zero wall time on a deterministic grid.
type Timer struct {
	line *Line

	Resets int // Reset calls observed
	Waits  int // completed full-period waits (Poll returning true)
	Nops   int // phase-alignment steps observed
}

func (t *Timer) Reset() { t.Resets++ }

func (t *Timer) Poll() bool {
	t.line.cell++
	t.Waits++
	return true
}

func (t *Timer) Nop() { t.Nops++ }

// TxPin records levels onto the line. Setting FailOn to n makes the nth
// operation (1-based) and every later one fail with ErrInjected, without
// touching the line.
type TxPin struct {
	line   *Line
	Ops    int
	FailOn int
}

func (p *TxPin) SetHigh() error { return p.set(true) }

func (p *TxPin) SetLow() error { return p.set(false) }

func (p *TxPin) set(level bool) error {
	p.Ops++
	if p.FailOn != 0 && p.Ops >= p.FailOn {
		return ErrInjected
	}
	p.line.drive(level)
	return nil
}

// RxPin samples the line. FailOn injects faults the same way as on TxPin.
type RxPin struct {
	line   *Line
	Ops    int
	FailOn int
}

func (p *RxPin) IsHigh() (bool, error) {
	p.Ops++
	if p.FailOn != 0 && p.Ops >= p.FailOn {
		return false, ErrInjected
	}
	return p.line.sample(), nil
}
