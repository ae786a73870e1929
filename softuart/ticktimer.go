// softuart/ticktimer.go

package softuart

import "time"

// TickTimer is a Timer on the runtime clock. It works on the host and on
// any TinyGo target with a monotonic time source; on RP2040 the
// register-backed timer gives tighter edges.
type TickTimer struct {
	period   time.Duration
	deadline time.Time
}

// NewTickTimer returns a running timer with the given period. For a symbol
// rate of baud bits per second the period is half a bit time:
//
//	softuart.NewTickTimer(time.Second / time.Duration(2*baud))
func NewTickTimer(period time.Duration) *TickTimer {
	return &TickTimer{period: period, deadline: time.Now().Add(period)}
}

func (t *TickTimer) Reset() { t.deadline = time.Now().Add(t.period) }

func (t *TickTimer) Poll() bool {
	now := time.Now()
	if now.Before(t.deadline) {
		return false
	}
	// Advance by a whole period to keep the grid anchored to Reset. If the
	// caller fell more than a period behind, re-anchor to now instead of
	// reporting a burst of elapsed periods.
	t.deadline = t.deadline.Add(t.period)
	if !t.deadline.After(now) {
		t.deadline = now.Add(t.period)
	}
	return true
}

func (t *TickTimer) Nop() {}
