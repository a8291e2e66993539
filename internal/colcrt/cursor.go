package colcrt

// rubOut moves the cursor back up to n columns, erasing what was written there
// and marking each erased column for underlining. It stops at column 0.
func (s *state) rubOut(n int) {
	for n > 0 && s.col > 0 {
		s.col--
		s.buf.text[s.col] = blank
		s.markUnder(s.col)
		n--
	}
}

// markUnder flags column c for the underline row unless underlining is off.
func (s *state) markUnder(c int) {
	if s.opts.NoUnderlining {
		return
	}
	s.buf.under[c] = dash
	s.pendingUnder = true
}
