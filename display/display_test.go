package display

import "testing"

func TestPadWidth(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", "                "},
		{"Scale", "Scale           "},
		{"Clair de la Lune", "Clair de la Lune"},
		{"A title that is far too long", "A title that is "},
	}
	for _, c := range cases {
		got := Pad(c.in)
		if got != c.want {
			t.Errorf("Pad(%q) = %q, want %q", c.in, got, c.want)
		}
		if len([]rune(got)) != Width {
			t.Errorf("Pad(%q) length = %d, want %d", c.in, len([]rune(got)), Width)
		}
	}
}

func TestSelectingScreen(t *testing.T) {
	lines := Selecting("Scale")
	if lines[0] != "Select a Song   " {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "Scale           " {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestPlayingScreen(t *testing.T) {
	lines := Playing("Ode to Joy")
	if lines[0] != "--- Playing --- " {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "Ode to Joy      " {
		t.Errorf("line 1 = %q", lines[1])
	}
}
