package colcrt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

const (
	esc    = 0x1b
	tabw   = 8
	upHalf = '8' // ESC 8: half-line up, rubs out one column
	upFull = '7' // ESC 7: full line up, rubs out two columns
)

// state is everything the renderer mutates while working through one source.
type state struct {
	opts Options
	buf  lines
	w    *bufio.Writer
	log  *log.Logger

	// col is the next column to write. It stays in [0, Width) while writing;
	// Width means the line is full and must be flushed before reading on.
	col          int
	pendingUnder bool
	printNL      bool
}

func newState(opts Options, w *bufio.Writer, l *log.Logger) *state {
	s := &state{opts: opts, w: w, log: l, printNL: true}
	s.buf.reset()
	return s
}

// decode renders in until it is exhausted. End of input is not an error.
func (s *state) decode(in *Stream) error {
	if s.opts.HalfLines {
		s.w.WriteByte('\n')
	}
	for {
		if s.col >= Width {
			s.flush()
			s.log.Debug("line overflow, skipping to next newline", "offset", in.Offset())
			if err := s.resync(in); err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				return err
			}
			s.col = 0
			continue
		}

		c, size, err := in.ReadRune()
		if err != nil {
			return s.finish(err)
		}
		switch {
		case c == esc:
			c, _, err = in.ReadRune()
			if err != nil {
				return s.finish(err)
			}
			switch c {
			case upHalf:
				s.rubOut(1)
			case upFull:
				s.rubOut(2)
			}
		case c == '\n':
			s.flush()
			s.col = 0
		case c == '\t':
			for s.col%tabw != 0 && s.col < Width {
				s.buf.text[s.col] = blank
				s.col++
			}
		case c == '_':
			s.buf.text[s.col] = blank
			s.markUnder(s.col)
			s.col++
		case !printable(c, size):
			// takes no column
		default:
			s.printNL = true
			s.buf.text[s.col] = c
			s.col++
		}
	}
}

// finish flushes the partial line at end of input. Only real read errors are
// passed back.
func (s *state) finish(err error) error {
	s.printNL = false
	s.flush()
	if errors.Is(err, io.EOF) {
		return nil
	}
	return fmt.Errorf("read: %w", err)
}

// resync discards input through the next newline. When a read leaves the
// offset where it was, one byte is skipped before trying again.
func (s *state) resync(in *Stream) error {
	last := in.Offset()
	for {
		c, _, err := in.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return err
			}
			return fmt.Errorf("read: %w", err)
		}
		if c == '\n' {
			return nil
		}
		if off := in.Offset(); off != last {
			last = off
			continue
		}
		if err := in.Skip(1); err != nil {
			if errors.Is(err, io.EOF) {
				return err
			}
			return fmt.Errorf("resynchronize at offset %d: %w", last, err)
		}
		last = in.Offset()
	}
}

// printable reports whether r occupies a display column. Bytes that are not
// valid in the input encoding do not.
func printable(r rune, size int) bool {
	if r == utf8.RuneError && size <= 1 {
		return false
	}
	return unicode.IsPrint(r) || unicode.Is(unicode.Zs, r)
}
