//go:build tinygo

// Package device holds the machine-backed hardware adapters for the
// Pimoroni Servo 2040. Everything that touches the machine package lives
// here; the core packages only see the small interfaces these types
// implement.
package device

import (
	"machine"

	"github.com/calvinmclean/multiservo"
)

// Servo 2040 pin map.
var ServoPins = [multiservo.NumChannels]machine.Pin{
	machine.GP0, machine.GP1, machine.GP2, machine.GP3,
	machine.GP4, machine.GP5, machine.GP6, machine.GP7,
	machine.GP8, machine.GP9, machine.GP10, machine.GP11,
	machine.GP12, machine.GP13, machine.GP14, machine.GP15,
	machine.GP16, machine.GP17,
}

const (
	// LEDDataPin feeds the board's chain of WS2812 status LEDs.
	LEDDataPin = machine.GP18
	// NumLEDs is the length of that chain.
	NumLEDs = 6
	// UserButtonPin is the USER SW input, active low.
	UserButtonPin = machine.GP23
)
