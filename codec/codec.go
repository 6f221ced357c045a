// Package codec decodes the byte-encoded song format shared with the
// chime controller firmware.
//
// Each byte is one of:
//
//	0x00        end of song
//	0x01-0x7F   pause, value = duration in sixteenth notes
//	0x80-0x8C   note strike (semitone offsets of the C major scale)
//	0x8D-0xFF   end of song (out of range, fail-safe stop)
package codec

// Kind identifies a decoded sequence event.
type Kind int

const (
	Note Kind = iota
	Pause
	EndOfSong
)

// Event is one decoded step of a song sequence.
type Event struct {
	Kind     Kind
	Channel  int // output channel 0-7, InvalidChannel for unknown codes
	Duration int // pause length in sixteenth notes (Pause only)
}

// InvalidChannel marks a byte inside the note range that matches none of
// the eight defined note codes. Such events produce no output.
const InvalidChannel = -1

// Note byte codes. The low nibble above CodeC is the semitone offset
// within one octave of C major, which is why the range has holes.
const (
	CodeEnd byte = 0x00
	CodeC   byte = 0x80
	CodeD   byte = 0x82
	CodeE   byte = 0x84
	CodeF   byte = 0x85
	CodeG   byte = 0x87
	CodeA   byte = 0x89
	CodeB   byte = 0x8B
	CodeC2  byte = 0x8C // C one octave up
)

const maxPause byte = 0x7F

// channelOf maps byte - CodeC to an output channel, -1 for the holes
// between the scale's semitone offsets.
var channelOf = [13]int8{0, -1, 1, -1, 2, 3, -1, 4, -1, 5, -1, 6, 7}

// Decode is total over the byte domain: every input yields exactly one
// event and malformed data degrades to EndOfSong rather than an error.
func Decode(b byte) Event {
	switch {
	case b == CodeEnd:
		return Event{Kind: EndOfSong}
	case b <= maxPause:
		return Event{Kind: Pause, Duration: int(b)}
	case b <= CodeC2:
		return Event{Kind: Note, Channel: int(channelOf[b-CodeC])}
	default:
		return Event{Kind: EndOfSong}
	}
}

// Mask converts a channel index to the one-bit activation mask sent on
// the wire. Out-of-range channels (including InvalidChannel) yield zero,
// which the transmitter treats as "nothing to energize".
func Mask(channel int) byte {
	if channel < 0 || channel > 7 {
		return 0
	}
	return 1 << channel
}
