package wire

import "chimebox/player"

// Multi fans one strike out to every configured emitter. An empty Multi
// is a valid no-hardware setup: strikes go nowhere but playback timing
// and the UI behave normally.
type Multi []player.Emitter

func (m Multi) Energize(mask byte) {
	for _, e := range m {
		e.Energize(mask)
	}
}
