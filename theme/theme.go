// Package theme holds the fixed color roles of the virtual LCD. The
// palette imitates a backlit character display: green glass, dark frame.
package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

type RGB [3]uint8

// Color roles.
var (
	bg      = RGB{0x10, 0x14, 0x10} // unlit frame
	surface = RGB{0x1e, 0x3a, 0x1e} // lit glass behind the characters
	fg      = RGB{0x9a, 0xe8, 0x6a} // character segments
	accent  = RGB{0xd8, 0xf8, 0xa8} // header / active elements
	muted   = RGB{0x4a, 0x6a, 0x4a} // help line, inactive chrome
)

type Theme struct{}

func New() *Theme { return &Theme{} }

func (t *Theme) BG() lipgloss.Color      { return toLipgloss(bg) }
func (t *Theme) Surface() lipgloss.Color { return toLipgloss(surface) }
func (t *Theme) FG() lipgloss.Color      { return toLipgloss(fg) }
func (t *Theme) Accent() lipgloss.Color  { return toLipgloss(accent) }
func (t *Theme) Muted() lipgloss.Color   { return toLipgloss(muted) }

func toLipgloss(c RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]))
}
