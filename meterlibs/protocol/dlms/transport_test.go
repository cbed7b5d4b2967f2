package dlms

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oskarberg/yahdlc/meterlibs/protocol/dlms/hdlc"
)

// bufferTransport is an in-memory Transport used to drive the hdlc codec
// in tests without a real serial port.
type bufferTransport struct {
	bytes.Buffer
	logger *log.Logger
}

func (b *bufferTransport) Close() error { return nil }

func (b *bufferTransport) SetLogger(logger *log.Logger) { b.logger = logger }

var _ Transport = (*bufferTransport)(nil)

// TestTransportCarriesFramedPayload drives a full encode -> write -> read ->
// decode cycle across the Transport boundary: the codec never touches
// Transport directly, a caller does.
func TestTransportCarriesFramedPayload(t *testing.T) {
	tr := &bufferTransport{}

	payload := []byte("meter reading: 12345 kWh")
	control := hdlc.Control{Kind: hdlc.FrameData, Seq: 3}

	wire := make([]byte, 2*(len(payload)+6))
	n, err := hdlc.FrameData(control, payload, wire)
	require.NoError(t, err)

	written, err := tr.Write(wire[:n])
	require.NoError(t, err)
	require.Equal(t, n, written)

	read := make([]byte, 512)
	rn, err := tr.Read(read)
	require.NoError(t, err)

	p := hdlc.NewParser()
	dst := make([]byte, hdlc.MaxPayloadSize)
	gotControl, consumed, dn, err := p.GetData(read[:rn], dst)
	require.NoError(t, err)
	require.Equal(t, rn, consumed)
	require.Equal(t, control, gotControl)
	require.Equal(t, payload, dst[:dn])
}

func TestTransportCarriesMultipleFramesInOneRead(t *testing.T) {
	tr := &bufferTransport{}

	payloads := [][]byte{[]byte("one"), []byte("two"), []byte("three")}
	p := hdlc.NewParser()
	dst := make([]byte, hdlc.MaxPayloadSize)

	for i, payload := range payloads {
		wire := make([]byte, 2*(len(payload)+6))
		n, err := hdlc.FrameData(hdlc.Control{Kind: hdlc.FrameData, Seq: uint8(i)}, payload, wire)
		require.NoError(t, err)
		_, err = tr.Write(wire[:n])
		require.NoError(t, err)
	}

	read := make([]byte, 4096)
	rn, err := tr.Read(read)
	require.NoError(t, err)
	stream := read[:rn]

	for i, payload := range payloads {
		control, consumed, n, err := p.GetData(stream, dst)
		require.NoError(t, err)
		require.Equal(t, uint8(i), control.Seq)
		require.Equal(t, payload, dst[:n])
		stream = stream[consumed:]
	}
}
