// Package display renders the two fixed-width lines of the 16x2
// character display. Pure formatting, no state.
package display

// Width is the character width of one display line.
const Width = 16

// Lines is the number of display lines.
const Lines = 2

const (
	selectBanner  = "Select a Song"
	playingBanner = "--- Playing ---"
)

// Selecting renders the song-selection screen for the given title.
func Selecting(title string) [Lines]string {
	return [Lines]string{Pad(selectBanner), Pad(title)}
}

// Playing renders the playback screen. The title stays on the second
// line so the user can see what is sounding.
func Playing(title string) [Lines]string {
	return [Lines]string{Pad(playingBanner), Pad(title)}
}

// Pad blank-pads s to the display width, truncating if it is longer.
// A short write would leave stale characters from the previous screen
// on a real character LCD.
func Pad(s string) string {
	r := []rune(s)
	if len(r) > Width {
		return string(r[:Width])
	}
	for len(r) < Width {
		r = append(r, ' ')
	}
	return string(r)
}
