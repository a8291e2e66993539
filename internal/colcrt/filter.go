// Package colcrt renders nroff-style output for display terminals. Underscores
// and half-line motions become a separate row of dashes beneath the text.
package colcrt

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Options are fixed for the whole run.
type Options struct {
	// NoUnderlining drops all underline rows.
	NoUnderlining bool
	// HalfLines emits a blank line for every half-line, even when nothing
	// on it is underlined.
	HalfLines bool
}

// Filter renders one or more input sources onto a single output.
type Filter struct {
	Options

	// Logger receives debug events. New sets one that discards them.
	Logger *log.Logger
	// Decode, when set, wraps every input before runes are read from it.
	Decode func(io.Reader) io.Reader

	out io.Writer
}

// New returns a Filter writing to out.
func New(out io.Writer, opts Options) *Filter {
	return &Filter{Options: opts, Logger: log.New(io.Discard), out: out}
}

// Process renders a single input to completion.
func (f *Filter) Process(r io.Reader) error {
	if f.Decode != nil {
		r = f.Decode(r)
	}
	w := bufio.NewWriter(f.out)
	s := newState(f.Options, w, f.logger())
	err := s.decode(NewStream(r))
	if ferr := w.Flush(); err == nil {
		err = ferr
	}
	return err
}

// Run processes each named file in order, or stdin when paths is empty. The
// first file that cannot be opened stops the run with a *SourceError.
func (f *Filter) Run(paths []string, stdin io.Reader) error {
	if len(paths) == 0 {
		f.logger().Debug("processing source", "path", "stdin")
		if err := f.Process(stdin); err != nil {
			return fmt.Errorf("stdin: %w", err)
		}
		return nil
	}
	for _, p := range paths {
		if err := f.processFile(p); err != nil {
			return err
		}
	}
	return nil
}

func (f *Filter) processFile(path string) error {
	fh, err := os.Open(path)
	if err != nil {
		return &SourceError{Path: path, Err: err}
	}
	defer fh.Close()

	f.logger().Debug("processing source", "path", path)
	if err := f.Process(fh); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func (f *Filter) logger() *log.Logger {
	if f.Logger == nil {
		return log.New(io.Discard)
	}
	return f.Logger
}
