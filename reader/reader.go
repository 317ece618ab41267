// Package reader assembles newline-terminated command lines from a
// non-blocking serial byte source.
package reader

// ByteSource hands out one buffered byte at a time and returns an error
// when nothing is available right now. machine.Serial behaves this way on
// TinyGo targets.
type ByteSource interface {
	ReadByte() (byte, error)
}

// MaxLineLen is the line buffer capacity. Characters arriving past it are
// dropped until a terminator resets the line.
const MaxLineLen = 255

// LineReader accumulates printable characters into a fixed buffer until a
// line terminator arrives. The buffer and cursor persist across polls, so a
// line may be assembled from bytes spread over many loop passes.
type LineReader struct {
	src ByteSource
	buf [MaxLineLen]byte
	n   int
}

// New returns a LineReader draining src.
func New(src ByteSource) *LineReader {
	return &LineReader{src: src}
}

// Poll drains every byte that is immediately available and returns a
// complete line as soon as '\n' or '\r' arrives with at least one buffered
// character. It never blocks: when the source runs dry without a terminator
// it returns ("", false) and keeps the partial line for the next poll.
//
// Bytes outside printable ASCII (32–126) are discarded, as is anything past
// the buffer capacity.
func (r *LineReader) Poll() (string, bool) {
	for {
		c, err := r.src.ReadByte()
		if err != nil {
			return "", false
		}

		switch {
		case c == '\n' || c == '\r':
			if r.n > 0 {
				line := string(r.buf[:r.n])
				r.n = 0
				return line, true
			}
		case c >= ' ' && c <= '~' && r.n < MaxLineLen:
			r.buf[r.n] = c
			r.n++
		}
	}
}
