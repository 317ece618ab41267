// Package loop runs the board's single-threaded cooperative schedule:
// poll the button, service the indicator, drain pending input, and sleep
// only when a pass found nothing to do.
package loop

import "time"

// LineSource yields complete command lines without blocking.
type LineSource interface {
	Poll() (string, bool)
}

// LineHandler executes one complete command line.
type LineHandler interface {
	HandleLine(line string)
}

// Indicator is the optional LED feedback surface serviced by the loop.
type Indicator interface {
	CommandReceived()
	Service()
	Welcome()
}

// Button reports the momentary state of the user button.
type Button interface {
	Pressed() bool
}

const (
	// MaxLinesPerPass bounds how many queued lines a single pass may
	// dispatch, so button and flash-timer polling stay responsive under
	// sustained input flooding.
	MaxLinesPerPass = 100

	// IdleSleep is how long an empty pass yields before polling again.
	IdleSleep = time.Millisecond
)

// Runner owns the loop state. All fields are set before Run and only the
// loop itself touches them afterwards.
type Runner struct {
	Lines     LineSource
	Handler   LineHandler
	Indicator Indicator
	Button    Button

	buttonWas bool
	sleep     func(time.Duration)
}

// New returns a Runner with no indicator and no button; assign the
// Indicator and Button fields to enable them before calling Run.
func New(lines LineSource, handler LineHandler) *Runner {
	return &Runner{
		Lines:     lines,
		Handler:   handler,
		Indicator: NopIndicator{},
		sleep:     time.Sleep,
	}
}

// Pass runs one scheduling pass and reports whether any input line was
// dispatched. The button is edge-detected by polling: a press observed
// after a release triggers the welcome animation once.
func (r *Runner) Pass() bool {
	if r.Button != nil {
		pressed := r.Button.Pressed()
		if pressed && !r.buttonWas {
			r.Indicator.Welcome()
		}
		r.buttonWas = pressed
	}

	r.Indicator.Service()

	had := false
	for i := 0; i < MaxLinesPerPass; i++ {
		line, ok := r.Lines.Poll()
		if !ok {
			break
		}
		r.Handler.HandleLine(line)
		r.Indicator.CommandReceived()
		had = true
	}
	return had
}

// Run loops forever. A pass that processed input repeats immediately for
// responsiveness under load; an idle pass yields briefly first.
func (r *Runner) Run() {
	for {
		if !r.Pass() {
			r.sleep(IdleSleep)
		}
	}
}

// NopIndicator satisfies Indicator for boards without an LED strip.
type NopIndicator struct{}

var _ Indicator = NopIndicator{}

// CommandReceived implements Indicator.
func (NopIndicator) CommandReceived() {}

// Service implements Indicator.
func (NopIndicator) Service() {}

// Welcome implements Indicator.
func (NopIndicator) Welcome() {}
