package lexer

import (
	"io"
	"strings"
)

const chunkSize = 4096

// source feeds the scanner a window onto the input. For string input the
// window is the whole text; for a reader it grows in chunks so a rule match
// that reaches the window edge can be retried against more data.
type source struct {
	r   io.Reader
	win string
	eof bool
}

func newStringSource(s string) *source {
	return &source{win: s, eof: true}
}

func newReaderSource(r io.Reader) *source {
	if sr, ok := r.(*strings.Reader); ok {
		var b strings.Builder
		b.Grow(sr.Len())
		_, _ = io.Copy(&b, sr)
		return newStringSource(b.String())
	}
	return &source{r: r}
}

// window returns the unread text currently buffered.
func (s *source) window() string { return s.win }

// fill reads another chunk into the window. It reports whether any new
// bytes arrived.
func (s *source) fill() bool {
	if s.eof {
		return false
	}
	buf := make([]byte, chunkSize)
	n, err := s.r.Read(buf)
	if n > 0 {
		s.win += string(buf[:n])
	}
	if err != nil {
		s.eof = true
	}
	return n > 0
}

// ensure grows the window until it holds at least n bytes or the input is
// exhausted.
func (s *source) ensure(n int) {
	for len(s.win) < n && s.fill() {
	}
}

// advance consumes n bytes from the front of the window.
func (s *source) advance(n int) {
	s.win = s.win[n:]
}

// empty reports whether all input has been consumed.
func (s *source) empty() bool {
	if len(s.win) > 0 {
		return false
	}
	return !s.fill()
}
