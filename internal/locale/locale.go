// Package locale maps the process locale onto a text encoding for reading
// input and writing output.
package locale

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// ErrUnsupported is returned for charset names that are known but have no
// decoder.
var ErrUnsupported = errors.New("charset not supported")

// Charset returns the codeset of the first non-empty of LC_ALL, LC_CTYPE and
// LANG, e.g. "ISO-8859-1" for "de_DE.ISO-8859-1@euro". It is empty when the
// locale names no codeset.
func Charset(getenv func(string) string) string {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if v := getenv(key); v != "" {
			return codeset(v)
		}
	}
	return ""
}

func codeset(loc string) string {
	if i := strings.IndexByte(loc, '@'); i >= 0 {
		loc = loc[:i]
	}
	if i := strings.IndexByte(loc, '.'); i >= 0 {
		return loc[i+1:]
	}
	return ""
}

// isUTF8 also accepts the names that mean "no particular charset".
func isUTF8(name string) bool {
	n := strings.ToLower(name)
	n = strings.NewReplacer("-", "", "_", "").Replace(n)
	switch n {
	case "", "c", "posix", "utf8":
		return true
	}
	return false
}

// Lookup resolves a charset name. A nil Encoding means UTF-8, which needs no
// transcoding.
func Lookup(name string) (encoding.Encoding, error) {
	if isUTF8(name) {
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		// glibc spells some codesets the WHATWG way ("iso88591")
		if henc, herr := htmlindex.Get(name); herr == nil {
			return henc, nil
		}
	}
	if err != nil {
		return nil, fmt.Errorf("charset %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("charset %q: %w", name, ErrUnsupported)
	}
	return enc, nil
}

// Decoder returns a function converting input in enc to UTF-8, or nil when
// enc is nil.
func Decoder(enc encoding.Encoding) func(io.Reader) io.Reader {
	if enc == nil {
		return nil
	}
	return func(r io.Reader) io.Reader {
		return transform.NewReader(r, enc.NewDecoder())
	}
}

// NewWriter returns a writer that encodes UTF-8 text into enc. Runes enc
// cannot represent are replaced. Close must be called to flush it.
func NewWriter(w io.Writer, enc encoding.Encoding) io.WriteCloser {
	if enc == nil {
		return nopCloser{w}
	}
	return transform.NewWriter(w, encoding.ReplaceUnsupported(enc.NewEncoder()))
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
