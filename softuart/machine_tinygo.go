// softuart/machine_tinygo.go

//go:build tinygo

package softuart

import "machine"

// machine.Pin adapters. Pin operations on TinyGo targets cannot fail, so
// the error results are always nil.

// MachineOutputPin adapts a machine.Pin to the OutputPin capability.
type MachineOutputPin struct {
	Pin machine.Pin
}

// NewMachineOutputPin configures p as an output and drives it high, the
// idle line level.
func NewMachineOutputPin(p machine.Pin) MachineOutputPin {
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	p.High()
	return MachineOutputPin{Pin: p}
}

func (o MachineOutputPin) SetHigh() error {
	o.Pin.High()
	return nil
}

func (o MachineOutputPin) SetLow() error {
	o.Pin.Low()
	return nil
}

// MachineInputPin adapts a machine.Pin to the InputPin capability.
type MachineInputPin struct {
	Pin machine.Pin
}

// NewMachineInputPin configures p as an input with a pull-up, so the line
// idles high when the far end is disconnected.
func NewMachineInputPin(p machine.Pin) MachineInputPin {
	p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return MachineInputPin{Pin: p}
}

func (i MachineInputPin) IsHigh() (bool, error) {
	return i.Pin.Get(), nil
}
