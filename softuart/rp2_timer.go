// softuart/rp2_timer.go

//go:build rp2040 || rp2350

package softuart

// RP2Timer runs the bit grid off the RP2040/RP2350 1 MHz timebase, read
// directly from TIMERAWL. Periods are whole microseconds, which is exact
// for common rates (e.g. 9600 baud = 52 µs half-bit) and off by under 1%
// up to 38400.
type RP2Timer struct {
	periodUS uint32
	next     uint32
}

// NewRP2Timer returns a running timer with the given period in
// microseconds. For a symbol rate of baud bits per second use 500000/baud
// (half a bit time).
func NewRP2Timer(periodUS uint32) *RP2Timer {
	return &RP2Timer{
		periodUS: periodUS,
		next:     timebase.TIMERAWL.Get() + periodUS,
	}
}

func (t *RP2Timer) Reset() {
	t.next = timebase.TIMERAWL.Get() + t.periodUS
}

func (t *RP2Timer) Poll() bool {
	// Signed difference survives TIMERAWL wraparound (~72 min).
	if int32(timebase.TIMERAWL.Get()-t.next) < 0 {
		return false
	}
	t.next += t.periodUS
	return true
}

// Nop is a single volatile read of the timebase, a few bus cycles.
func (t *RP2Timer) Nop() {
	_ = timebase.TIMERAWL.Get()
}
