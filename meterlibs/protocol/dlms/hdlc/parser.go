package hdlc

import "github.com/oskarberg/yahdlc/meterlibs/protocol/dlms/encoding"

// MaxPayloadSize bounds the payload a Parser can recover from a single
// frame. It sizes the parser's fixed, non-allocating internal buffer.
const MaxPayloadSize = 2048

// bufferCapacity is the internal buffer size: ADDRESS + CONTROL + PAYLOAD
// + FCS_LO + FCS_HI, post-destuffing, never including the frame's FLAGs.
const bufferCapacity = MaxPayloadSize + 4

// Parser holds the state of an in-progress frame across calls to
// GetData. The zero value is not ready to use; call NewParser. A Parser
// is not safe for concurrent use by multiple goroutines — callers
// handling independent streams create independent Parsers rather than
// sharing one.
type Parser struct {
	buf     [bufferCapacity]byte
	length  int
	fcs     uint16
	escape  bool
	started bool
}

// NewParser returns a Parser ready to consume bytes from a fresh stream.
func NewParser() *Parser {
	p := &Parser{}
	p.reset()
	return p
}

func (p *Parser) reset() {
	p.length = 0
	p.fcs = encoding.InitialFCS
	p.escape = false
	p.started = false
}

// reopen clears the in-progress frame content but keeps (or sets)
// started, since the FLAG byte that triggers it doubles as the opener of
// whatever frame follows.
func (p *Parser) reopen() {
	p.length = 0
	p.fcs = encoding.InitialFCS
	p.escape = false
	p.started = true
}

// reportedLength returns the buffer length GetData reports on an
// FCS-invalid close: the accumulated content length plus one. Matching
// that convention exactly, rather than the bare content length, keeps
// this parser's FCS-invalid byte count consistent with every other
// yahdlc implementation's recv_length on the same input.
func (p *Parser) reportedLength() int {
	if p.length+1 > len(p.buf) {
		return len(p.buf)
	}
	return p.length + 1
}

// GetData feeds src into the parser, incrementally maintaining
// byte-stuffing, FCS, and framing state across calls. It reports one of
// three outcomes:
//
//   - success: err is nil, consumed is the number of src bytes consumed
//     through the closing FLAG, n is the payload length written to dst,
//     and control is filled in from the frame's control octet.
//   - framing-incomplete: err is ErrIncomplete, consumed == len(src), n
//     == 0. This is not a failure; the parser retains its state and
//     awaits more bytes from a later call.
//   - FCS-invalid: err is ErrFCSMismatch, consumed is the number of src
//     bytes consumed through the closing FLAG, and n is the accumulated
//     content length plus one, copied into dst — callers must not treat
//     those bytes as a trustworthy payload. This also covers a
//     structurally valid, FCS-valid frame whose control octet doesn't
//     decode to a known frame kind.
//
// dst must be at least MaxPayloadSize long to be guaranteed to hold any
// payload this Parser can recover.
func (p *Parser) GetData(src []byte, dst []byte) (control Control, consumed int, n int, err error) {
	if src == nil || dst == nil {
		return Control{}, 0, 0, ErrInvalidArgument
	}

	for i, b := range src {
		if b == FLAG {
			if p.length == 0 {
				// Either the very first FLAG ever seen, or a stray FLAG
				// with nothing accumulated since the last one: a run of
				// FLAGs between frames collapses into a single boundary
				// instead of producing empty-frame errors.
				p.reopen()
				continue
			}

			consumed = i + 1
			if p.length >= 4 && encoding.GoodFCS(p.fcs) {
				ctl, cerr := controlFromByte(p.buf[1])
				if cerr != nil {
					// The FCS validates but the control octet doesn't
					// decode to a known frame kind: this is corrupted or
					// foreign wire content, not a bad local argument, so
					// it is reported the same way any other untrustworthy
					// frame boundary is.
					n = copy(dst, p.buf[:p.reportedLength()])
					p.reopen()
					return Control{}, consumed, n, ErrFCSMismatch
				}
				n = copy(dst, p.buf[2:p.length-2])
				// This FLAG also opens whatever frame follows.
				p.reopen()
				return ctl, consumed, n, nil
			}

			// Either the FCS did not validate, or there are fewer than
			// 4 content bytes (too short to hold ADDRESS + CONTROL +
			// FCS_LO + FCS_HI and so impossible to validate at all); both
			// degrade to the same outcome: a frame boundary was found but
			// its content cannot be trusted.
			n = copy(dst, p.buf[:p.reportedLength()])
			p.reopen()
			return Control{}, consumed, n, ErrFCSMismatch
		}

		if !p.started {
			continue
		}

		if b == ESC {
			p.escape = true
			continue
		}

		actual := b
		if p.escape {
			actual ^= escapeXOR
			p.escape = false
		}

		if p.length < len(p.buf) {
			p.buf[p.length] = actual
			p.length++
			p.fcs = encoding.UpdateFCS(p.fcs, actual)
		}
		// Bytes beyond bufferCapacity are dropped without updating fcs,
		// so an oversized frame degrades to an FCS mismatch on close
		// rather than silently validating truncated content.
	}

	return Control{}, len(src), 0, ErrIncomplete
}
