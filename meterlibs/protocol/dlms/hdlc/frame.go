package hdlc

import "github.com/oskarberg/yahdlc/meterlibs/protocol/dlms/encoding"

// Wire constants. FLAG delimits frames; ESC introduces a stuffed byte.
const (
	FLAG byte = 0x7E
	ESC  byte = 0x7D

	// Address is the single-octet station identifier this codec always
	// uses on encode. Multi-byte/multi-drop addressing is out of scope.
	Address byte = 0xFF

	escapeXOR byte = 0x20
)

// minFrameSize is the smallest possible wire frame: FLAG, ADDRESS,
// CONTROL, two FCS bytes, FLAG, with no escapes required.
const minFrameSize = 6

// FrameData encodes control and payload into a complete, stuffed HDLC
// frame written to dst, returning the number of bytes written.
//
// Go's slice-based signature collapses the upstream codec's four
// separate null/length checks: dst == nil is the only argument that can
// make this call impossible, since a nil or empty payload is valid (an
// empty frame) and Go slices always carry a correct length.
//
// dst must be sized for the worst case: 2*(len(payload)+6) is always
// sufficient, since at most the CONTROL octet, the two FCS octets and
// every payload byte expand to two bytes under stuffing; the FLAGs and
// the 0xFF ADDRESS are always written as single bytes.
func FrameData(control Control, payload []byte, dst []byte) (int, error) {
	if dst == nil {
		return 0, ErrInvalidArgument
	}

	n := 0
	n += writeByte(dst[n:], FLAG)

	fcs := encoding.InitialFCS

	fcs = encoding.UpdateFCS(fcs, Address)
	n += writeStuffed(dst[n:], Address)

	controlByte := control.Byte()
	fcs = encoding.UpdateFCS(fcs, controlByte)
	n += writeStuffed(dst[n:], controlByte)

	for _, b := range payload {
		fcs = encoding.UpdateFCS(fcs, b)
		n += writeStuffed(dst[n:], b)
	}

	transmitted := encoding.FinishFCS(fcs)
	n += writeStuffed(dst[n:], byte(transmitted&0xFF))
	n += writeStuffed(dst[n:], byte(transmitted>>8))

	n += writeByte(dst[n:], FLAG)

	return n, nil
}

// writeByte writes a single verbatim byte and returns how many bytes were
// written (always 1); it exists purely to keep FrameData's accounting
// symmetric with writeStuffed.
func writeByte(dst []byte, b byte) int {
	dst[0] = b
	return 1
}

// writeStuffed writes b through the stuffing filter: FLAG and ESC are
// replaced by ESC followed by b^0x20, everything else passes through
// verbatim.
func writeStuffed(dst []byte, b byte) int {
	if b == FLAG || b == ESC {
		dst[0] = ESC
		dst[1] = b ^ escapeXOR
		return 2
	}
	dst[0] = b
	return 1
}
