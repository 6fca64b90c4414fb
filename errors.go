package bytecursor

import (
	"errors"
	"fmt"
)

// errors returned by cursor operations, checked with errors.Is
var (
	// ErrDisposed is returned when any operation is invoked after Close.
	ErrDisposed = errors.New("cursor has been disposed")

	// ErrEndOfStream is returned when the source is exhausted before a
	// request could be satisfied.
	ErrEndOfStream = errors.New("end of stream")

	// ErrUnsupportedSeek is returned for a backward seek outside the
	// retained buffer window, or any backward seek past the buffer on a
	// source that cannot seek.
	ErrUnsupportedSeek = errors.New("seek target outside the retained window")
)

// CapacityError is returned when a single request is structurally larger than
// the configured buffer threshold. It indicates a configuration error, not a
// data-dependent condition, so Try* variants panic with it instead of
// reporting false.
type CapacityError struct {
	Requested int
	Threshold int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("requested %d bytes exceeds the buffer threshold %d", e.Requested, e.Threshold)
}

// EncodingError is returned when a byte sequence cannot be decoded under the
// cursor's encoding. Offset is the absolute position of the first invalid
// byte in the source.
type EncodingError struct {
	Offset   int64
	Encoding string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("invalid %s byte sequence at offset %d", e.Encoding, e.Offset)
}

// IsEncodingError reports whether err is an *EncodingError, returning it if so.
func IsEncodingError(err error) (*EncodingError, bool) {
	var ee *EncodingError
	if errors.As(err, &ee) {
		return ee, true
	}
	return nil, false
}
