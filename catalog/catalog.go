// Package catalog holds the built-in song table. The table is fixed at
// build time and never mutated; there is no dynamic song loading.
package catalog

import "chimebox/codec"

// Song is one entry of the table.
//
// Tempo must be greater than zero. This is an invariant on the catalog
// data itself, not a runtime check: the playback delay formula divides
// by it.
type Song struct {
	Title    string // at most 16 characters, the display width
	Tempo    int    // beats per minute
	Sequence []byte // encoded note/pause bytes, 0x00 terminated
}

// Shorthand for the sequence literals below. Durations are plain byte
// values in sixteenth notes: 2 = eighth, 4 = quarter, 8 = half, 16 = whole.
const (
	c   = codec.CodeC
	d   = codec.CodeD
	e   = codec.CodeE
	f   = codec.CodeF
	g   = codec.CodeG
	a   = codec.CodeA
	b   = codec.CodeB
	c2  = codec.CodeC2
	end = codec.CodeEnd
)

var songs = [...]Song{
	{
		Title: "Scale",
		Tempo: 150,
		Sequence: []byte{
			c, 4, d, 4, e, 4, f, 4, g, 4, a, 4, b, 4, c2, 8,
			end,
		},
	},
	{
		Title: "Twinkle Twinkle",
		Tempo: 120,
		Sequence: []byte{
			c, 4, c, 4, g, 4, g, 4, a, 4, a, 4, g, 8,
			f, 4, f, 4, e, 4, e, 4, d, 4, d, 4, c, 8,
			end,
		},
	},
	{
		Title: "Ode to Joy",
		Tempo: 140,
		Sequence: []byte{
			e, 4, e, 4, f, 4, g, 4, g, 4, f, 4, e, 4, d, 4,
			c, 4, c, 4, d, 4, e, 4, e, 6, d, 2, d, 8,
			end,
		},
	},
	{
		Title: "Mary Had a Lamb",
		Tempo: 130,
		Sequence: []byte{
			e, 4, d, 4, c, 4, d, 4, e, 4, e, 4, e, 8,
			d, 4, d, 4, d, 8, e, 4, g, 4, g, 8,
			e, 4, d, 4, c, 4, d, 4, e, 4, e, 4, e, 4, e, 4,
			d, 4, d, 4, e, 4, d, 4, c, 16,
			end,
		},
	},
	{
		Title: "Frere Jacques",
		Tempo: 120,
		Sequence: []byte{
			c, 4, d, 4, e, 4, c, 4, c, 4, d, 4, e, 4, c, 4,
			e, 4, f, 4, g, 8, e, 4, f, 4, g, 8,
			g, 2, a, 2, g, 2, f, 2, e, 4, c, 4,
			g, 2, a, 2, g, 2, f, 2, e, 4, c, 4,
			c, 4, e, 4, c, 8, c, 4, e, 4, c, 8,
			end,
		},
	},
	{
		Title: "Hot Cross Buns",
		Tempo: 110,
		Sequence: []byte{
			e, 4, d, 4, c, 8, e, 4, d, 4, c, 8,
			c, 2, c, 2, c, 2, c, 2, d, 2, d, 2, d, 2, d, 2,
			e, 4, d, 4, c, 8,
			end,
		},
	},
	{
		Title: "Row Your Boat",
		Tempo: 100,
		Sequence: []byte{
			c, 4, c, 4, c, 3, d, 1, e, 4,
			e, 3, d, 1, e, 3, f, 1, g, 8,
			c2, 2, c2, 1, c2, 1, g, 2, g, 1, g, 1,
			e, 2, e, 1, e, 1, c, 2, c, 1, c, 1,
			g, 3, f, 1, e, 3, d, 1, c, 8,
			end,
		},
	},
	{
		Title: "London Bridge",
		Tempo: 120,
		Sequence: []byte{
			g, 3, a, 1, g, 2, f, 2, e, 2, f, 2, g, 4,
			d, 2, e, 2, f, 4, e, 2, f, 2, g, 4,
			g, 3, a, 1, g, 2, f, 2, e, 2, f, 2, g, 4,
			d, 4, g, 4, e, 2, c, 6,
			end,
		},
	},
	{
		Title: "Oh! Susanna",
		Tempo: 140,
		Sequence: []byte{
			c, 2, d, 2, e, 4, g, 4, g, 6, a, 2,
			g, 4, e, 4, c, 6, d, 2,
			e, 4, e, 4, d, 4, c, 4, d, 12,
			end,
		},
	},
	{
		Title: "Jingle Bells",
		Tempo: 140,
		Sequence: []byte{
			e, 4, e, 4, e, 8, e, 4, e, 4, e, 8,
			e, 4, g, 4, c, 3, d, 1, e, 16,
			f, 4, f, 4, f, 3, f, 1, f, 4, e, 4, e, 2, e, 2,
			g, 4, g, 4, f, 4, d, 4, c, 16,
			end,
		},
	},
	{
		Title: "When the Saints",
		Tempo: 160,
		Sequence: []byte{
			c, 2, e, 2, f, 2, g, 8, c, 2, e, 2, f, 2, g, 8,
			c, 2, e, 2, f, 2, g, 4, e, 4, c, 4, e, 4, d, 8,
			e, 4, e, 4, d, 4, c, 6, c, 2, e, 4,
			g, 4, g, 4, f, 8, f, 4, e, 4, f, 4,
			g, 4, e, 4, c, 4, d, 4, c, 8,
			end,
		},
	},
	{
		Title: "Clair de la Lune",
		Tempo: 110,
		Sequence: []byte{
			c, 4, c, 4, c, 4, d, 4, e, 8, d, 8,
			c, 4, e, 4, d, 4, d, 4, c, 16,
			end,
		},
	},
}

// Size returns the number of songs in the table.
func Size() int { return len(songs) }

// Get returns the song at index i, clamping out-of-range indexes to the
// nearest valid entry.
func Get(i int) *Song {
	if i < 0 {
		i = 0
	}
	if i >= len(songs) {
		i = len(songs) - 1
	}
	return &songs[i]
}
