package dlms

import (
	"log"

	"go.bug.st/serial"
)

// SerialTransport is a Transport backed by a real serial port, giving the
// codec's external-collaborator boundary a concrete producer/consumer of
// bytes. It does not know about frames, control fields, or FCS — it only
// moves bytes to and from the wire.
type SerialTransport struct {
	port   serial.Port
	logger *log.Logger
}

// OpenSerialTransport opens portName with mode and wraps it in a
// SerialTransport. The caller is responsible for closing the returned
// transport.
func OpenSerialTransport(portName string, mode *serial.Mode) (*SerialTransport, error) {
	port, err := serial.Open(portName, mode)
	if err != nil {
		return nil, err
	}
	return &SerialTransport{port: port}, nil
}

// Read reads whatever bytes are currently available from the port.
func (s *SerialTransport) Read(p []byte) (int, error) {
	n, err := s.port.Read(p)
	if err != nil && s.logger != nil {
		s.logger.Printf("serial read error: %v", err)
	}
	return n, err
}

// Write writes p to the port.
func (s *SerialTransport) Write(p []byte) (int, error) {
	n, err := s.port.Write(p)
	if err != nil && s.logger != nil {
		s.logger.Printf("serial write error: %v", err)
	}
	return n, err
}

// Close closes the underlying port.
func (s *SerialTransport) Close() error {
	return s.port.Close()
}

// SetLogger installs a logger for I/O errors. A nil logger disables
// logging.
func (s *SerialTransport) SetLogger(logger *log.Logger) {
	s.logger = logger
}
