package wire

import "fmt"

// DeviceAddress is the chime controller's address on the serial link.
// The firmware today only answers address zero, but the framing carries
// it so a second controller can share the bus.
const DeviceAddress byte = 0x00

// Command builds the ASCII frame sent for one strike: `<AABB>` where AA
// is the device address and BB the channel bitmask, both upper-case hex.
// The link is one-way; no acknowledgement is ever read back.
func Command(addr, mask byte) []byte {
	return []byte(fmt.Sprintf("<%02X%02X>", addr, mask))
}
