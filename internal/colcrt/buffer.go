package colcrt

import "unicode"

// Width is the fixed number of output columns. Lines that grow past it are
// flushed and the remainder of the input line is dropped.
const Width = 132

const (
	blank = ' '
	dash  = '-'
)

// lines is the pair of parallel column buffers: the text being rendered and
// the underline annotation beneath it. Both rest at all-blank.
type lines struct {
	text  [Width]rune
	under [Width]rune
}

func (l *lines) reset() {
	l.resetText()
	l.resetUnder()
}

func (l *lines) resetText() {
	for i := range l.text {
		l.text[i] = blank
	}
}

func (l *lines) resetUnder() {
	for i := range l.under {
		l.under[i] = blank
	}
}

// trimRight drops the trailing whitespace run from s.
func trimRight(s []rune) []rune {
	end := len(s)
	for end > 0 && isSpace(s[end-1]) {
		end--
	}
	return s[:end]
}

// isSpace follows the C library's wide-character classification, which keeps
// the no-break spaces and NEL as ordinary text.
func isSpace(r rune) bool {
	switch r {
	case '\u0085', '\u00a0', '\u2007', '\u202f':
		return false
	}
	return unicode.IsSpace(r)
}
