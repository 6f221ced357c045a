// Package player turns a song's byte sequence into timed channel strikes.
package player

import (
	"time"

	"chimebox/catalog"
	"chimebox/codec"
	"chimebox/debug"
)

// Emitter receives one channel-activation mask per note strike.
type Emitter interface {
	Energize(mask byte)
}

// Clock suspends the engine for one polling interval. The engine checks
// for cancellation after every tick, so a stop request is honored within
// one interval.
type Clock interface {
	Tick()
}

// TickInterval is the fixed polling interval used to subdivide pauses.
const TickInterval = 20 * time.Millisecond

const tickMillis = 20

// SleepClock is the wall-clock Clock used outside of tests.
type SleepClock struct{}

func (SleepClock) Tick() { time.Sleep(TickInterval) }

// Engine streams decoded song events to an Emitter.
type Engine struct {
	emitter Emitter
	clock   Clock
}

func New(emitter Emitter, clock Clock) *Engine {
	return &Engine{emitter: emitter, clock: clock}
}

// Ticks converts a pause duration in sixteenth notes to a whole number
// of polling ticks at the given tempo. One sixteenth lasts
// 120*125/tempo milliseconds, and a tick is 20 ms.
func Ticks(duration, tempo int) int {
	return duration * 120 * 125 / tempo / tickMillis
}

// Play streams the song until its terminator, the end of the byte slice,
// or until cancelled reports true. It always returns; every byte decodes
// to either an event that advances the cursor or EndOfSong.
//
// Exactly one Energize call is made per valid note, in sequence order.
// Undefined note codes are dropped without a transmission.
func (e *Engine) Play(song *catalog.Song, cancelled func() bool) {
	debug.Log("player", "start %q tempo=%d bytes=%d", song.Title, song.Tempo, len(song.Sequence))

	for _, raw := range song.Sequence {
		if cancelled() {
			debug.Log("player", "cancelled %q", song.Title)
			return
		}

		ev := codec.Decode(raw)
		switch ev.Kind {
		case codec.EndOfSong:
			debug.Log("player", "end of song %q", song.Title)
			return

		case codec.Note:
			mask := codec.Mask(ev.Channel)
			if mask == 0 {
				debug.Log("player", "dropping undefined note code %#02x", raw)
				continue
			}
			e.emitter.Energize(mask)

		case codec.Pause:
			for n := Ticks(ev.Duration, song.Tempo); n > 0; n-- {
				e.clock.Tick()
				debug.LogEvery(50, "player", "pause tick %q", song.Title)
				if cancelled() {
					debug.Log("player", "cancelled mid-pause %q", song.Title)
					return
				}
			}
		}
	}
	debug.Log("player", "sequence exhausted %q", song.Title)
}
