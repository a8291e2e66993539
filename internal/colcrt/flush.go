package colcrt

// flush writes the text row and, when anything was marked, the underline row
// beneath it, then clears the buffers for the next line.
func (s *state) flush() {
	col := s.col
	s.writeRunes(trimRight(s.buf.text[:]))
	if s.printNL {
		s.w.WriteByte('\n')
	}
	if s.opts.HalfLines || s.opts.NoUnderlining {
		s.printNL = false
	}
	s.buf.resetText()

	if s.pendingUnder {
		s.pendingUnder = false
		s.writeRunes(trimRight(s.buf.under[:col]))
		s.w.WriteByte('\n')
		s.buf.resetUnder()
	} else if s.opts.HalfLines && col > 0 {
		s.w.WriteByte('\n')
	}
}

func (s *state) writeRunes(rs []rune) {
	for _, r := range rs {
		s.w.WriteRune(r)
	}
}
