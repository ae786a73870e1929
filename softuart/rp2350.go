// softuart/rp2350.go

//go:build rp2350

package softuart

import "device/rp"

// The RP2350 has two timer blocks; the bit grid runs off the first.
var timebase = rp.TIMER0
