package softuart

import (
	"testing"
	"time"
)

func TestTickTimerElapses(t *testing.T) {
	tm := NewTickTimer(20 * time.Millisecond)

	if tm.Poll() {
		t.Fatal("Poll reported elapsed immediately after construction")
	}
	time.Sleep(30 * time.Millisecond)
	if !tm.Poll() {
		t.Fatal("Poll did not report elapsed after a full period")
	}
	if tm.Poll() {
		t.Fatal("Poll reported a second period without waiting")
	}
}

func TestTickTimerReset(t *testing.T) {
	tm := NewTickTimer(20 * time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	tm.Reset()
	if tm.Poll() {
		t.Fatal("Poll reported elapsed right after Reset")
	}
	time.Sleep(30 * time.Millisecond)
	if !tm.Poll() {
		t.Fatal("Poll did not report elapsed one period after Reset")
	}
}

func TestTickTimerDrivesTransceiver(t *testing.T) {
	// Wall-clock pacing with the simulated pins replaced by counters is
	// covered by the sim tests; here just prove a frame completes in
	// roughly ten periods of real time.
	line := newWallClockLine()
	u := New(line.tx, line.rx, NewTickTimer(time.Millisecond))

	start := time.Now()
	if err := u.WriteByte(0x42); err != nil {
		t.Fatalf("WriteByte: %v", err)
	}
	elapsed := time.Since(start)
	if elapsed < 9*time.Millisecond {
		t.Fatalf("frame finished too quickly: %v", elapsed)
	}
	if len(line.drives) != 10 {
		t.Fatalf("drives recorded: got %d want 10", len(line.drives))
	}
}

// wallClockLine records drive levels in order without any cell grid.
type wallClockLine struct {
	drives []bool
	tx     *wallClockTx
	rx     *wallClockRx
}

func newWallClockLine() *wallClockLine {
	l := &wallClockLine{}
	l.tx = &wallClockTx{line: l}
	l.rx = &wallClockRx{}
	return l
}

type wallClockTx struct{ line *wallClockLine }

func (p *wallClockTx) SetHigh() error {
	p.line.drives = append(p.line.drives, true)
	return nil
}

func (p *wallClockTx) SetLow() error {
	p.line.drives = append(p.line.drives, false)
	return nil
}

type wallClockRx struct{}

func (p *wallClockRx) IsHigh() (bool, error) { return true, nil }
