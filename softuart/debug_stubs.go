// softuart/debug_stubs.go

//go:build !softuartdebug

package softuart

type Stats struct{}

func (t *Transceiver) dbgWait()     {}
func (t *Transceiver) dbgSent()     {}
func (t *Transceiver) dbgReceived() {}
func (t *Transceiver) dbgBusError() {}
func (t *Transceiver) dbgRejected() {}

func (t *Transceiver) DebugReset()       {}
func (t *Transceiver) DebugStats() Stats { return Stats{} }
