package catalog

import (
	"testing"

	"chimebox/codec"
)

func TestCatalogShape(t *testing.T) {
	if Size() != 12 {
		t.Fatalf("Size() = %d, want 12", Size())
	}

	for i := 0; i < Size(); i++ {
		s := Get(i)
		if s.Title == "" {
			t.Errorf("song %d: empty title", i)
		}
		if len(s.Title) > 16 {
			t.Errorf("song %d: title %q is %d chars, max 16", i, s.Title, len(s.Title))
		}
		if s.Tempo <= 0 {
			t.Errorf("song %d: tempo %d, must be positive", i, s.Tempo)
		}
		if len(s.Sequence) == 0 {
			t.Errorf("song %d: empty sequence", i)
			continue
		}
		if last := s.Sequence[len(s.Sequence)-1]; last != codec.CodeEnd {
			t.Errorf("song %d: sequence ends with %#02x, want terminator", i, last)
		}
	}
}

func TestCatalogSequencesDecode(t *testing.T) {
	// Every byte before the terminator must decode to a playable event:
	// a pause or a note on a real channel. A stray terminator or invalid
	// note code in the middle of a song is a data bug.
	for i := 0; i < Size(); i++ {
		s := Get(i)
		for j, raw := range s.Sequence[:len(s.Sequence)-1] {
			ev := codec.Decode(raw)
			if ev.Kind == codec.EndOfSong {
				t.Errorf("song %d (%s): byte %d (%#02x) terminates early", i, s.Title, j, raw)
			}
			if ev.Kind == codec.Note && ev.Channel == codec.InvalidChannel {
				t.Errorf("song %d (%s): byte %d (%#02x) is an undefined note code", i, s.Title, j, raw)
			}
		}
	}
}

func TestGetClamps(t *testing.T) {
	if Get(-5) != Get(0) {
		t.Error("Get(-5) should clamp to first song")
	}
	if Get(Size()+3) != Get(Size()-1) {
		t.Error("Get beyond the end should clamp to last song")
	}
}

func TestScaleEntry(t *testing.T) {
	s := Get(0)
	if s.Title != "Scale" {
		t.Fatalf("song 0 title = %q, want Scale", s.Title)
	}
	if s.Tempo != 150 {
		t.Fatalf("song 0 tempo = %d, want 150", s.Tempo)
	}

	var notes int
	for _, raw := range s.Sequence {
		if ev := codec.Decode(raw); ev.Kind == codec.Note {
			notes++
		}
	}
	if notes != 8 {
		t.Fatalf("Scale has %d notes, want 8", notes)
	}
}
