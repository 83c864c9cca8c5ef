package workdir

import (
	"errors"
	"fmt"
)

// ErrClosed is returned by Initialize once the handle's scope has ended.
var ErrClosed = errors.New("workdir: handle is closed")

// IOError reports a failed filesystem operation on Path.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("workdir: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// SerializationError reports that a value could not be encoded as Format.
// Nothing is written when it occurs.
type SerializationError struct {
	Format string
	Name   string
	Err    error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("workdir: encode %s for %s: %v", e.Format, e.Name, e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }
