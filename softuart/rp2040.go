// softuart/rp2040.go

//go:build rp2040

package softuart

import "device/rp"

// The RP2040 exposes a single timer block.
var timebase = rp.TIMER
