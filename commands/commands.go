// Package commands parses and executes the board's line protocol: one
// command per line, each line holding any number of "channel,angle" pairs
// separated by ';'. There is no escaping, quoting or nesting.
package commands

import (
	"io"
	"strconv"
	"strings"

	"github.com/calvinmclean/multiservo"
)

// Actuator is the validated side of the dispatcher. Implementations trust
// the dispatcher to have bounds-checked channel and angle already.
type Actuator interface {
	SetAngle(channel, degrees int)
	Angle(channel int) int
}

// Handler executes complete command lines against an Actuator and writes
// human-readable diagnostics to Out. Diagnostics are advisory only; they
// are not part of the wire contract and nothing machine-parses them.
type Handler struct {
	actuator Actuator
	out      io.Writer
}

// NewHandler returns a Handler reporting to out. A nil out silences
// diagnostics.
func NewHandler(actuator Actuator, out io.Writer) *Handler {
	return &Handler{actuator: actuator, out: out}
}

// HandleLine parses one complete command line and applies every valid pair
// in order. Tokens are independent: an invalid pair is rejected with a
// diagnostic and its siblings still apply. A token with no comma is
// malformed and skipped silently.
func (h *Handler) HandleLine(line string) {
	for _, token := range strings.Split(line, ";") {
		if token == "" {
			continue
		}

		chField, angleField, ok := strings.Cut(token, ",")
		if !ok {
			continue
		}

		channel := atoi(chField)
		degrees := atoi(angleField)

		if !multiservo.ValidChannel(channel) || !multiservo.ValidAngle(degrees) {
			h.say("invalid channel (" + strconv.Itoa(channel) + ") or angle (" + strconv.Itoa(degrees) + ") out of range")
			continue
		}

		before := h.actuator.Angle(channel)
		h.actuator.SetAngle(channel, degrees)
		h.say("ch " + strconv.Itoa(channel) + ": " + strconv.Itoa(before) +
			" -> " + strconv.Itoa(degrees) +
			" (" + strconv.FormatFloat(multiservo.Pulse(degrees), 'f', 1, 64) + "us)")
	}
}

// atoi parses a base-10 integer permissively: anything unparseable becomes
// 0, C atoi style. There is no way to tell "0" apart from garbage;
// validation happens on the resulting value.
func atoi(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}

func (h *Handler) say(s string) {
	if h.out == nil {
		return
	}
	h.out.Write([]byte(s + "\n"))
}
