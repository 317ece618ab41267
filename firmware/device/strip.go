//go:build tinygo

package device

import (
	"machine"

	"tinygo.org/x/drivers/ws2812"
)

// NewStrip configures the onboard WS2812 chain. The returned device
// satisfies indicator.Strip.
func NewStrip() ws2812.Device {
	LEDDataPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return ws2812.New(LEDDataPin)
}
