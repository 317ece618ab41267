package reader

import (
	"errors"
	"strings"
	"testing"
)

var errNoData = errors.New("no data")

// script replays a fixed byte sequence and then runs dry, like a UART
// receive buffer.
type script struct {
	data []byte
}

func (s *script) ReadByte() (byte, error) {
	if len(s.data) == 0 {
		return 0, errNoData
	}
	b := s.data[0]
	s.data = s.data[1:]
	return b, nil
}

func (s *script) feed(in string) {
	s.data = append(s.data, []byte(in)...)
}

func TestPollCompleteLine(t *testing.T) {
	src := &script{}
	src.feed("3,45\n")
	r := New(src)

	line, ok := r.Poll()
	if !ok {
		t.Fatal("expected a complete line")
	}
	if line != "3,45" {
		t.Errorf("expected=%q, got=%q", "3,45", line)
	}

	if _, ok := r.Poll(); ok {
		t.Error("expected no further lines")
	}
}

func TestPollPartialLineAcrossPolls(t *testing.T) {
	src := &script{}
	r := New(src)

	src.feed("3,")
	if _, ok := r.Poll(); ok {
		t.Fatal("line is incomplete, expected no line yet")
	}

	src.feed("45\n")
	line, ok := r.Poll()
	if !ok {
		t.Fatal("expected a complete line after the terminator arrived")
	}
	if line != "3,45" {
		t.Errorf("expected=%q, got=%q", "3,45", line)
	}
}

func TestPollTerminators(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected []string
	}{
		{"newline", "1,10\n2,20\n", []string{"1,10", "2,20"}},
		{"carriage return", "1,10\r2,20\r", []string{"1,10", "2,20"}},
		{"crlf yields one line", "1,10\r\n", []string{"1,10"}},
		{"leading terminators ignored", "\n\r\n1,10\n", []string{"1,10"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &script{}
			src.feed(tt.in)
			r := New(src)

			var got []string
			for {
				line, ok := r.Poll()
				if !ok {
					break
				}
				got = append(got, line)
			}

			if len(got) != len(tt.expected) {
				t.Fatalf("expected %d lines, got %d: %q", len(tt.expected), len(got), got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("line %d: expected=%q, got=%q", i, tt.expected[i], got[i])
				}
			}
		})
	}
}

func TestPollDiscardsNonPrintable(t *testing.T) {
	src := &script{data: []byte{0x01, '3', 0x7f, ',', 0x1b, '4', '5', '\n'}}
	r := New(src)

	line, ok := r.Poll()
	if !ok {
		t.Fatal("expected a complete line")
	}
	if line != "3,45" {
		t.Errorf("expected=%q, got=%q", "3,45", line)
	}
}

func TestPollOverflowTruncates(t *testing.T) {
	long := strings.Repeat("a", MaxLineLen+45)
	src := &script{}
	src.feed(long + "\n")
	r := New(src)

	line, ok := r.Poll()
	if !ok {
		t.Fatal("expected a (truncated) line")
	}
	if len(line) != MaxLineLen {
		t.Errorf("expected %d characters, got %d", MaxLineLen, len(line))
	}
	if line != long[:MaxLineLen] {
		t.Error("truncated line does not match the first buffered characters")
	}

	// The buffer must be usable again after the overflow.
	src.feed("1,10\n")
	line, ok = r.Poll()
	if !ok || line != "1,10" {
		t.Errorf("expected=%q, got=%q (ok=%v)", "1,10", line, ok)
	}
}

func TestPollNeverBlocksWhenEmpty(t *testing.T) {
	r := New(&script{})
	if _, ok := r.Poll(); ok {
		t.Error("expected no line from an empty source")
	}
}
