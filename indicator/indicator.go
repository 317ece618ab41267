// Package indicator drives the board's small RGB strip to reflect system
// state. It is purely cosmetic: nothing here feeds back into actuation, and
// the whole package is an optional add-on behind the main loop.
package indicator

import (
	"image/color"
	"time"
)

// Strip is the minimal LED surface the indicator draws on. The ws2812
// driver's Device satisfies it directly.
type Strip interface {
	WriteColors(buf []color.RGBA) error
}

// State is the indicator's categorical display state.
type State int

const (
	// Ready is the idle pattern: the status LED steady green, the rest off.
	Ready State = iota
	// CommandFlash shows the status LED blue for a short window after a
	// command line was processed, then auto-reverts to Ready.
	CommandFlash
)

func (s State) String() string {
	switch s {
	case Ready:
		return "Ready"
	case CommandFlash:
		return "CommandFlash"
	default:
		return "Unknown"
	}
}

const (
	// FlashWindow is how long the command flash stays lit after the most
	// recent command line.
	FlashWindow = 150 * time.Millisecond

	welcomeSteps      = 32
	welcomeStepTime   = 15 * time.Millisecond
	welcomeBrightness = 0.2
)

var (
	readyColor = color.RGBA{G: 32}
	flashColor = color.RGBA{B: 64}
	off        = color.RGBA{}
)

// Indicator owns the strip's pixel buffer and a wall-clock flash timer.
// All methods are called from the single main loop; there is no locking.
type Indicator struct {
	strip Strip
	buf   []color.RGBA

	state      State
	flashUntil time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// New returns an Indicator for a strip of numLEDs pixels, showing nothing
// until the first state change.
func New(strip Strip, numLEDs int) *Indicator {
	return &Indicator{
		strip: strip,
		buf:   make([]color.RGBA, numLEDs),
		now:   time.Now,
		sleep: time.Sleep,
	}
}

// State returns the current display state.
func (ind *Indicator) State() State {
	return ind.state
}

// Ready paints the idle pattern.
func (ind *Indicator) Ready() {
	ind.state = Ready
	ind.clear()
	ind.buf[0] = readyColor
	ind.show()
}

// CommandReceived starts (or restarts) the command flash. Every processed
// line resets the window, so sustained traffic keeps the LED lit.
func (ind *Indicator) CommandReceived() {
	ind.flashUntil = ind.now().Add(FlashWindow)
	if ind.state == CommandFlash {
		return
	}
	ind.state = CommandFlash
	ind.clear()
	ind.buf[0] = flashColor
	ind.show()
}

// Service reverts an expired command flash. It is polled once per loop
// pass; the comparison is wall-clock, not an interrupt, so reversion can
// land slightly after the window but never before it.
func (ind *Indicator) Service() {
	if ind.state == CommandFlash && !ind.now().Before(ind.flashUntil) {
		ind.Ready()
	}
}

// Welcome runs the one-shot hue sweep across the whole strip and then
// returns to the ready pattern. It blocks for the duration of the
// animation; the loop does not service input while it plays.
func (ind *Indicator) Welcome() {
	n := len(ind.buf)
	for step := 0; step < welcomeSteps; step++ {
		base := mapRange(float64(step), 0, welcomeSteps, 0, 360)
		for i := range ind.buf {
			hue := base + mapRange(float64(i), 0, float64(n), 0, 360)
			for hue >= 360 {
				hue -= 360
			}
			ind.buf[i] = hsv(hue, 1, welcomeBrightness)
		}
		ind.show()
		ind.sleep(welcomeStepTime)
	}
	ind.Ready()
}

func (ind *Indicator) clear() {
	for i := range ind.buf {
		ind.buf[i] = off
	}
}

func (ind *Indicator) show() {
	// Cosmetic output only, so a failed strip write is not surfaced.
	_ = ind.strip.WriteColors(ind.buf)
}
