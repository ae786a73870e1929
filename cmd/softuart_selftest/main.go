// cmd/softuart_selftest/main.go

package main

import (
	"errors"
	"time"

	"machine"

	"github.com/jangala-dev/tinygo-softuart/softuart"
)

// On-device self-test. Wire TX → RX (for Pico: GP0 to GP1) before flashing;
// attach a terminal or analyzer to GP0 to watch the transmitted pattern.
//
// Checks, repeated forever:
//  1. With the looped line idle (high), ReadByte must refuse with the
//     invalid-interrupt error.
//  2. With TX held low, ReadByte must decode 0x00 from its own line.
//  3. A recognisable burst (0x55, 0xAA, "softuart\r\n") is transmitted at
//     9600 baud for external inspection.

var (
	txPin = machine.GP0
	rxPin = machine.GP1
	baud  = 9600
)

func main() {
	tx := softuart.NewMachineOutputPin(txPin)
	rx := softuart.NewMachineInputPin(rxPin)
	timer := softuart.NewTickTimer(time.Second / time.Duration(2*baud))
	u := softuart.New(tx, rx, timer)

	pass, fail := 0, 0
	for {
		// 1: idle high line must be rejected.
		_, err := u.ReadByte()
		if errors.Is(err, softuart.ErrInvalidInterrupt) {
			pass++
		} else {
			fail++
			println("selftest: idle line not rejected:", errString(err))
		}

		// 2: a held-low line decodes as 0x00.
		_ = tx.SetLow()
		b, err := u.ReadByte()
		_ = tx.SetHigh()
		if err == nil && b == 0x00 {
			pass++
		} else {
			fail++
			println("selftest: held-low line: byte", b, "err:", errString(err))
		}

		// 3: transmit a burst for the wire.
		if _, err := u.Write([]byte{0x55, 0xAA}); err != nil {
			fail++
			println("selftest: burst:", errString(err))
		}
		if _, err := u.Write([]byte("softuart\r\n")); err != nil {
			fail++
		}
		_ = u.Flush()

		println("selftest: pass", pass, "fail", fail)
		time.Sleep(1 * time.Second)
	}
}

func errString(err error) string {
	if err == nil {
		return "<nil>"
	}
	return err.Error()
}
