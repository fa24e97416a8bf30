package blobstream

import (
	"errors"
	"fmt"
)

// Common stream lifecycle errors
var (
	ErrStreamExhausted = errors.New("end of the stream reached")
	ErrStreamConsumed  = errors.New("stream has already been read")
	ErrStreamInUse     = errors.New("stream is already being read")
	ErrNotSupported    = errors.New("operation not supported")
)

// StreamError records an error and the operation and source that caused it
type StreamError struct {
	Op     string
	Source string
	Err    error
}

// Error implements the error interface
func (e *StreamError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Source, e.Err)
}

// Unwrap returns the underlying error
func (e *StreamError) Unwrap() error {
	return e.Err
}

// IsExhausted reports whether an error indicates that a read was attempted
// after the source was gone with no backing file to reopen from
func IsExhausted(err error) bool {
	return errors.Is(err, ErrStreamExhausted)
}

// IsConsumed reports whether an error indicates that materialization was
// requested after the stream content was already drained
func IsConsumed(err error) bool {
	return errors.Is(err, ErrStreamConsumed)
}

// IsInUse reports whether an error indicates that materialization was
// requested after reading had already started
func IsInUse(err error) bool {
	return errors.Is(err, ErrStreamInUse)
}
