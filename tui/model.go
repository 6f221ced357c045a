package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"chimebox/catalog"
	"chimebox/config"
	"chimebox/debug"
	"chimebox/display"
	"chimebox/input"
	"chimebox/player"
	"chimebox/theme"
)

// Model drives the virtual front panel: the 16x2 LCD plus the encoder,
// with keys standing in for detents and the button.
type Model struct {
	Ctrl   *input.Controller
	Engine *player.Engine
	Theme  *theme.Theme

	cfg      *config.Config
	status   string // emitter summary for the header, e.g. "serial:/dev/ttyUSB0"
	lines    [display.Lines]string
	quitting bool
}

// playbackDoneMsg is sent when the playback goroutine returns, whether
// by end of song or by a stop click.
type playbackDoneMsg struct{}

func NewModel(ctrl *input.Controller, engine *player.Engine, th *theme.Theme, cfg *config.Config, status string) Model {
	m := Model{
		Ctrl:   ctrl,
		Engine: engine,
		Theme:  th,
		cfg:    cfg,
		status: status,
	}
	m.lines = display.Selecting(catalog.Get(ctrl.Selection()).Title)
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			m.Ctrl.StopPlayback() // playback goroutine exits within a tick
			m.cfg.UI.LastSelected = m.Ctrl.Selection()
			if err := m.cfg.Save(); err != nil {
				debug.Log("tui", "config save failed: %v", err)
			}
			return m, tea.Quit

		case "up", "k":
			m.Ctrl.Increment()
			m.refreshSelection()

		case "down", "j":
			m.Ctrl.Decrement()
			m.refreshSelection()

		case "enter", " ":
			if m.Ctrl.Click() {
				song := catalog.Get(m.Ctrl.Selection())
				m.lines = display.Playing(song.Title)
				return m, m.playSong(song)
			}
			// Stop requested; the engine notices within one tick and the
			// done message restores the selection screen.

		case "l":
			m.Ctrl.LongPress()
		}

	case playbackDoneMsg:
		m.Ctrl.StopPlayback()
		// Detents turned during playback take effect now.
		m.Ctrl.TakeChanged()
		m.lines = display.Selecting(catalog.Get(m.Ctrl.Selection()).Title)
	}

	return m, nil
}

// refreshSelection re-renders the selection screen if the selection
// changed. While a song is playing the change stays recorded but is not
// rendered until playback ends.
func (m *Model) refreshSelection() {
	if m.Ctrl.Playing() {
		return
	}
	if m.Ctrl.TakeChanged() {
		m.lines = display.Selecting(catalog.Get(m.Ctrl.Selection()).Title)
	}
}

// playSong runs the engine in the background and reports completion.
func (m Model) playSong(song *catalog.Song) tea.Cmd {
	ctrl, engine := m.Ctrl, m.Engine
	return func() tea.Msg {
		engine.Play(song, func() bool { return !ctrl.Playing() })
		return playbackDoneMsg{}
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent())
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())
	lcdStyle := lipgloss.NewStyle().
		Foreground(m.Theme.FG()).
		Background(m.Theme.Surface()).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.Theme.Muted())

	header := headerStyle.Render("chimebox  " + m.status)
	lcd := lcdStyle.Render(m.lines[0] + "\n" + m.lines[1])
	help := dimStyle.Render("k/↑ j/↓: turn  enter/space: press  l: hold  q: quit")

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n\n")
	out.WriteString(lcd)
	out.WriteString("\n\n")
	out.WriteString(help)
	out.WriteString("\n")

	return out.String()
}
