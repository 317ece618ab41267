//go:build tinygo

package device

import "machine"

// Button reads the board's user switch, which shorts to ground when
// pressed.
type Button struct {
	pin machine.Pin
}

// NewButton configures the user switch with its pull-up.
func NewButton() *Button {
	UserButtonPin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return &Button{pin: UserButtonPin}
}

// Pressed reports the momentary switch state.
func (b *Button) Pressed() bool {
	return !b.pin.Get()
}
