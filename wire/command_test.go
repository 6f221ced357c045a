package wire

import (
	"testing"

	"chimebox/codec"
	"chimebox/player"
)

func TestCommandFraming(t *testing.T) {
	cases := []struct {
		addr, mask byte
		want       string
	}{
		{0x00, 0x01, "<0001>"},
		{0x00, 0x80, "<0080>"},
		{0x00, 0xFF, "<00FF>"},
		{0x02, 0x10, "<0210>"},
	}
	for _, c := range cases {
		if got := string(Command(c.addr, c.mask)); got != c.want {
			t.Errorf("Command(%#02x, %#02x) = %q, want %q", c.addr, c.mask, got, c.want)
		}
	}
}

func TestCommandFromChannelMask(t *testing.T) {
	// Channel 7 (high C) is the top bit.
	got := string(Command(DeviceAddress, codec.Mask(7)))
	if got != "<0080>" {
		t.Fatalf("channel 7 command = %q, want <0080>", got)
	}
}

type recordingEmitter struct {
	masks []byte
}

func (r *recordingEmitter) Energize(mask byte) { r.masks = append(r.masks, mask) }

func TestMultiFansOut(t *testing.T) {
	a, b := &recordingEmitter{}, &recordingEmitter{}
	m := Multi{a, b}
	m.Energize(0x05)

	if len(a.masks) != 1 || a.masks[0] != 0x05 {
		t.Errorf("first emitter got %#v", a.masks)
	}
	if len(b.masks) != 1 || b.masks[0] != 0x05 {
		t.Errorf("second emitter got %#v", b.masks)
	}

	var _ player.Emitter = Multi{} // empty fan-out is still an Emitter
	Multi{}.Energize(0x01)         // and a no-op
}
