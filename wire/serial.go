package wire

import (
	"fmt"

	"go.bug.st/serial"

	"chimebox/debug"
)

// Serial streams strike commands to the chime controller over a serial
// port.
type Serial struct {
	port serial.Port
	name string
}

// OpenSerial opens the named serial device at the given baud rate.
func OpenSerial(name string, baud int) (*Serial, error) {
	mode := &serial.Mode{BaudRate: baud}
	p, err := serial.Open(name, mode)
	if err != nil {
		return nil, fmt.Errorf("serial open %s: %w", name, err)
	}
	debug.Log("serial", "opened %s at %d baud", name, baud)
	return &Serial{port: p, name: name}, nil
}

// Energize writes one framed command for the given channel mask. Write
// errors are logged and swallowed: the link is fire-and-forget and a
// failed strike is no worse than a dropped one.
func (s *Serial) Energize(mask byte) {
	if _, err := s.port.Write(Command(DeviceAddress, mask)); err != nil {
		debug.Log("serial", "write to %s failed: %v", s.name, err)
	}
}

// Close closes the underlying port.
func (s *Serial) Close() {
	debug.Log("serial", "closing %s", s.name)
	_ = s.port.Close()
}
