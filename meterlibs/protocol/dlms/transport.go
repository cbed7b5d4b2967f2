// Package dlms hosts the transport-layer boundary the HDLC-style codec in
// meterlibs/protocol/dlms/hdlc sits on top of. The codec itself never
// touches a Transport: callers read bytes from one, feed them to a
// (*hdlc.Parser).GetData, and write the output of hdlc.FrameData back to
// one.
package dlms

import "log"

// Transport is the byte-stream boundary a caller drives the HDLC codec
// across. It is intentionally frame-agnostic: Transport only moves raw
// bytes, exactly like the serial port or socket it wraps.
type Transport interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	Close() error
	SetLogger(logger *log.Logger)
}
