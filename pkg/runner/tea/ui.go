// Package teaui is the interactive terminal calendar.
package teaui

import (
	"time"

	"github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/cal/pkg/monthgrid"
	"tableflip.dev/cal/pkg/render"
	"tableflip.dev/cal/pkg/tui/theme"
)

// Model holds the displayed month. Navigation replaces pos with the result
// of monthgrid.Advance and the grid is rebuilt on every View.
type Model struct {
	pos       monthgrid.Position
	clock     monthgrid.Clock
	weekStart time.Weekday

	theme theme.Theme
	text  *render.Text
	keys  keyMap
	help  help.Model

	termWidth  int
	termHeight int
}

// New creates a model showing pos.
func New(pos monthgrid.Position, clock monthgrid.Clock, weekStart time.Weekday) Model {
	if clock == nil {
		clock = monthgrid.SystemClock{}
	}
	th := theme.Default()
	h := help.New()
	h.Styles.ShortKey = th.Footer.Help
	h.Styles.ShortDesc = th.Footer.Help
	return Model{
		pos:       pos,
		clock:     clock,
		weekStart: weekStart,
		theme:     th,
		text:      &render.Text{Styles: &th.Calendar},
		keys:      defaultKeyMap(),
		help:      h,
	}
}

// Position is the month currently displayed.
func (m Model) Position() monthgrid.Position {
	return m.pos
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update handles navigation keys and window sizing.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Prev):
			m.pos = monthgrid.Advance(m.pos, -1)
		case key.Matches(msg, m.keys.Next):
			m.pos = monthgrid.Advance(m.pos, 1)
		case key.Matches(msg, m.keys.Today):
			m.pos = m.clock.Today().Position()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

func (m Model) calendarView() string {
	page := render.NewPage(m.pos, m.clock.Today(), m.weekStart)
	return m.text.String(page)
}

func (m Model) statusView() string {
	today := m.clock.Today()
	status := "today " + today.String()
	if today.Position() != m.pos {
		status += " (t to jump back)"
	}
	return m.theme.Footer.Status.Render(status)
}

// View renders the framed month above the status line and key help,
// centred when the terminal size is known.
func (m Model) View() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		m.theme.Panel.Frame.Render(m.calendarView()),
		m.statusView(),
		"",
		m.help.View(m.keys),
	)
	if m.termWidth == 0 || m.termHeight == 0 {
		return body
	}
	return lipgloss.Place(m.termWidth, m.termHeight, lipgloss.Center, lipgloss.Center, body)
}

// Run starts the interactive calendar at pos.
func Run(pos monthgrid.Position, clock monthgrid.Clock, weekStart time.Weekday) error {
	p := tea.NewProgram(New(pos, clock, weekStart), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
