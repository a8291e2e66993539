package colcrt

import (
	"errors"
	"fmt"
)

// ErrNoProgress is returned when reads stop advancing through the input and
// the stream cannot be moved past the stuck position.
var ErrNoProgress = errors.New("input stream is not advancing")

// SourceError reports an input that could not be opened. It aborts the run.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("cannot open %s: %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }
