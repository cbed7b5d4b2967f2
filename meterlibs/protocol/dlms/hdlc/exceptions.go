package hdlc

import "errors"

// The codec recognizes a closed set of three outcomes beyond success, so
// sentinel errors are used instead of the wrapped-struct exception
// hierarchy this package used to expose for the open-ended DLMS
// application-layer error surface.
var (
	// ErrInvalidArgument is returned when a caller-supplied argument
	// makes a call impossible to carry out, e.g. a nil output buffer.
	ErrInvalidArgument = errors.New("hdlc: invalid argument")

	// ErrIncomplete indicates that no frame boundary has been found yet
	// in the bytes seen so far. It is not a failure: the parser retains
	// its state and the caller is expected to supply more bytes.
	ErrIncomplete = errors.New("hdlc: framing incomplete, more input required")

	// ErrFCSMismatch indicates a complete frame boundary was found but
	// its frame check sequence did not validate. The parser has already
	// reset itself by the time this is returned.
	ErrFCSMismatch = errors.New("hdlc: frame check sequence mismatch")
)
