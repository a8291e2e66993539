package colcrt

import (
	"bufio"
	"io"
)

// Stream is a forward-only rune reader that tracks how many bytes of the
// underlying input it has consumed.
type Stream struct {
	rd  io.RuneReader
	off int64
}

// NewStream wraps r. Readers that already decode runes are used directly;
// anything else is buffered.
func NewStream(r io.Reader) *Stream {
	if rr, ok := r.(io.RuneReader); ok {
		return &Stream{rd: rr}
	}
	return &Stream{rd: bufio.NewReader(r)}
}

// ReadRune implements io.RuneReader.
func (s *Stream) ReadRune() (rune, int, error) {
	r, size, err := s.rd.ReadRune()
	s.off += int64(size)
	return r, size, err
}

// Offset reports the number of bytes consumed so far.
func (s *Stream) Offset() int64 { return s.off }

type discarder interface {
	Discard(n int) (int, error)
}

// Skip drops n bytes from the input without decoding them. It fails with
// ErrNoProgress when the underlying reader can neither discard nor seek.
func (s *Stream) Skip(n int) error {
	switch rd := s.rd.(type) {
	case discarder:
		m, err := rd.Discard(n)
		s.off += int64(m)
		if err != nil {
			return err
		}
		if m < n {
			return ErrNoProgress
		}
		return nil
	case io.Seeker:
		if _, err := rd.Seek(int64(n), io.SeekCurrent); err != nil {
			return err
		}
		s.off += int64(n)
		return nil
	default:
		return ErrNoProgress
	}
}
