//go:build tinygo

package device

import (
	"errors"
	"machine"
	"strconv"

	"tinygo.org/x/drivers/servo"

	"github.com/calvinmclean/multiservo"
)

// pwmSlices are the RP2040 PWM peripherals in slice order. A pin's slice is
// (pin >> 1) & 7.
var pwmSlices = [8]servo.PWM{
	machine.PWM0, machine.PWM1, machine.PWM2, machine.PWM3,
	machine.PWM4, machine.PWM5, machine.PWM6, machine.PWM7,
}

// ServoBank drives all 18 outputs and implements multiservo.PulseWriter.
//
// TODO: GP16/GP17 fold back onto PWM slice 0 and mirror whatever GP0/GP1
// output, since the RP2040 only exposes 16 PWM channels. Driving the bank
// from PIO would make channels 16 and 17 independent.
type ServoBank struct {
	servos [multiservo.NumChannels]servo.Servo
}

// NewServoBank configures every PWM slice for the 20ms servo period and
// attaches one servo per output pin.
func NewServoBank() (*ServoBank, error) {
	var arrays [len(pwmSlices)]servo.Array
	for slice, pwm := range pwmSlices {
		arr, err := servo.NewArray(pwm)
		if err != nil {
			return nil, errors.New("error configuring PWM slice " + strconv.Itoa(slice) + ": " + err.Error())
		}
		arrays[slice] = arr
	}

	bank := &ServoBank{}
	for ch, pin := range ServoPins {
		s, err := arrays[(int(pin)>>1)&7].Add(pin)
		if err != nil {
			return nil, errors.New("error adding servo " + strconv.Itoa(ch) + ": " + err.Error())
		}
		bank.servos[ch] = s
	}
	return bank, nil
}

// SetPulseWidth implements multiservo.PulseWriter.
func (b *ServoBank) SetPulseWidth(channel int, micros float64) {
	b.servos[channel].SetMicroseconds(int16(micros + 0.5))
}

// EnableChannel starts pulsing the channel at its center position.
func (b *ServoBank) EnableChannel(channel int) {
	b.servos[channel].SetMicroseconds(int16(multiservo.CenterPulse))
}

// DisableChannel stops pulsing the channel, letting the servo relax.
func (b *ServoBank) DisableChannel(channel int) {
	b.servos[channel].SetMicroseconds(0)
}
