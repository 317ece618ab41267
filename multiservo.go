package multiservo

// Board limits for the Servo 2040: 18 channels with ±140° of travel mapped
// linearly onto the standard 1000–2000µs servo pulse range.
const (
	NumChannels = 18

	MinAngle = -140
	MaxAngle = 140

	MinPulse    = 1000.0
	CenterPulse = 1500.0
	MaxPulse    = 2000.0
)

// PulseWriter applies a pulse width to one physical output channel.
// firmware/device implements it with one servo per channel; tests record
// the writes in memory.
type PulseWriter interface {
	SetPulseWidth(channel int, micros float64)
}

// Pulse converts an angle in degrees to a pulse width in microseconds:
// -140° → 1000µs, 0° → 1500µs, +140° → 2000µs. The direct linear map is
// the compatibility contract; it deliberately bypasses the driver's
// generic calibration, which proved unreliable on this board.
func Pulse(degrees int) float64 {
	return CenterPulse + float64(degrees)*500.0/float64(MaxAngle)
}

// ValidChannel reports whether ch addresses one of the board's outputs.
func ValidChannel(ch int) bool {
	return ch >= 0 && ch < NumChannels
}

// ValidAngle reports whether degrees is within the servo travel range.
func ValidAngle(degrees int) bool {
	return degrees >= MinAngle && degrees <= MaxAngle
}

// ChannelTable owns the last-commanded angle of every channel and writes
// pulses through a PulseWriter. It is created once at startup and shared by
// reference. Callers validate channel and angle before mutating; the table
// trusts them and does no bounds re-checking.
type ChannelTable struct {
	out    PulseWriter
	angles [NumChannels]int
}

// NewChannelTable returns a table with every channel at 0° (center).
func NewChannelTable(out PulseWriter) *ChannelTable {
	return &ChannelTable{out: out}
}

// SetAngle moves one channel to the given angle and records it.
func (t *ChannelTable) SetAngle(channel, degrees int) {
	t.out.SetPulseWidth(channel, Pulse(degrees))
	t.angles[channel] = degrees
}

// Angle returns the last angle commanded on the channel. It exists for
// diagnostic reporting only and feeds no control decision.
func (t *ChannelTable) Angle(channel int) int {
	return t.angles[channel]
}

// Center moves every channel to 0° (1500µs), the boot position.
func (t *ChannelTable) Center() {
	for ch := 0; ch < NumChannels; ch++ {
		t.SetAngle(ch, 0)
	}
}
