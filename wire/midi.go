package wire

import (
	"fmt"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // register MIDI driver

	"chimebox/debug"
)

// chimePitch maps output channels to MIDI notes, C4 up to C5, matching
// the pitch of the physical chime bars.
var chimePitch = [8]uint8{60, 62, 64, 65, 67, 69, 71, 72}

const monitorVelocity = 100

// strikeLength is how long the monitor holds each note. The physical
// bars ring on their own; a synth needs an explicit note-off.
const strikeLength = 100 * time.Millisecond

// MIDIMonitor mirrors every strike to a MIDI output port so songs can be
// auditioned on a synth without chime hardware attached.
type MIDIMonitor struct {
	send func(gomidi.Message) error
}

// OpenMIDIMonitor opens the MIDI output port with the given name.
func OpenMIDIMonitor(portName string) (*MIDIMonitor, error) {
	for _, port := range gomidi.GetOutPorts() {
		if port.String() != portName {
			continue
		}
		send, err := gomidi.SendTo(port)
		if err != nil {
			return nil, fmt.Errorf("midi open %q: %w", portName, err)
		}
		debug.Log("midi", "monitor connected to %q", portName)
		return &MIDIMonitor{send: send}, nil
	}
	return nil, fmt.Errorf("midi out port %q not found", portName)
}

// Energize sends a short note for every set bit in the mask.
func (m *MIDIMonitor) Energize(mask byte) {
	for ch := 0; ch < 8; ch++ {
		if mask&(1<<ch) == 0 {
			continue
		}
		note := chimePitch[ch]
		if err := m.send(gomidi.NoteOn(0, note, monitorVelocity)); err != nil {
			debug.Log("midi", "note on failed: %v", err)
			continue
		}
		go func(n uint8) {
			time.Sleep(strikeLength)
			if err := m.send(gomidi.NoteOff(0, n)); err != nil {
				debug.Log("midi", "note off failed: %v", err)
			}
		}(note)
	}
}
