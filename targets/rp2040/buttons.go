//go:build rp2040 || rp2350

package main

import (
	"machine"

	"stopclock/core"
)

// Physical button wiring, in core.ButtonPin order. Both switches short
// their pin to ground, so the pins run as pull-up inputs.
var buttonPins = [core.NumButtons]machine.Pin{
	machine.GP14, // play/pause
	machine.GP15, // reset
}

// pinInputDriver implements core.InputDriver on machine pins.
type pinInputDriver struct{}

func (pinInputDriver) ConfigureInputPullUp(pin core.ButtonPin) error {
	buttonPins[pin].Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return nil
}

func (pinInputDriver) ReadPin(pin core.ButtonPin) bool {
	return buttonPins[pin].Get()
}
