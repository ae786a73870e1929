// softuart/debug_hooks.go

//go:build softuartdebug

package softuart

// Stats holds counters since the last reset. The transceiver is single
// threaded by design (one owner, no ISR involvement), so plain counters
// suffice.
type Stats struct {
	FramesSent     uint32 // WriteByte calls that completed the stop bit
	FramesReceived uint32 // ReadByte calls that returned a byte
	BitWaits       uint32 // completed full-period waits
	BusErrors      uint32 // pin operations that failed
	RejectedReads  uint32 // ReadByte calls refused by the start-bit check
}

func (t *Transceiver) dbgWait()     { t.stats.BitWaits++ }
func (t *Transceiver) dbgSent()     { t.stats.FramesSent++ }
func (t *Transceiver) dbgReceived() { t.stats.FramesReceived++ }
func (t *Transceiver) dbgBusError() { t.stats.BusErrors++ }
func (t *Transceiver) dbgRejected() { t.stats.RejectedReads++ }

// DebugReset zeroes the counters.
func (t *Transceiver) DebugReset() { t.stats = Stats{} }

// DebugStats returns a copy of the counters.
func (t *Transceiver) DebugStats() Stats { return t.stats }
