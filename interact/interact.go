// Package interact is a terminal front-end for playing a level.
package interact

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jdginn/go-laser-puzzle/level"
	"github.com/jdginn/go-laser-puzzle/puzzle"
)

var (
	docStyle    = lipgloss.NewStyle().Margin(1, 2)
	beamStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#fb4934")).Bold(true)
	blockStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7c6f64"))
	mirrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#83a598"))
	markerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#fabd2f")).Bold(true)
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	solvedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#b8bb26")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#fb4934"))
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Rotate key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Rotate, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Left, k.Right}, {k.Rotate, k.Quit}}
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
	Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
	Rotate: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "rotate")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

type model struct {
	session *puzzle.Session
	cursor  level.Point
	help    help.Model
	status  string
}

func newModel(s *puzzle.Session) model {
	cursor := level.P(1, 1)
	if mirrors := s.Level().Mirrors(); len(mirrors) > 0 {
		cursor = mirrors[0]
	}
	return model{session: s, cursor: cursor, help: help.New()}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		l := m.session.Level()
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			m.cursor.Y = min(m.cursor.Y+1, l.Height())
		case key.Matches(msg, keys.Down):
			m.cursor.Y = max(m.cursor.Y-1, 1)
		case key.Matches(msg, keys.Left):
			m.cursor.X = max(m.cursor.X-1, 1)
		case key.Matches(msg, keys.Right):
			m.cursor.X = min(m.cursor.X+1, l.Width())
		case key.Matches(msg, keys.Rotate):
			if _, err := m.session.Rotate(m.cursor); err != nil {
				m.status = err.Error()
			} else {
				m.status = ""
			}
		}
	case tea.WindowSizeMsg:
		h, _ := docStyle.GetFrameSize()
		m.help.Width = msg.Width - h
	}
	return m, nil
}

// cellRune picks what a cell of the augmented grid shows. The beam is drawn over empty cells
// and the perimeter.
func (m model) cellRune(p level.Point, lit bool) (string, lipgloss.Style) {
	l := m.session.Level()
	switch p {
	case l.StartingPoint():
		return "S", markerStyle
	case l.FinishingPoint():
		return "F", markerStyle
	}
	b, inside := l.At(p)
	switch {
	case !inside && lit:
		return "·", beamStyle
	case !inside:
		return " ", lipgloss.NewStyle()
	case b.Kind == level.Blocking:
		return "x", blockStyle
	case b.IsMirror() && lit:
		return string(b.Rune()), beamStyle
	case b.IsMirror():
		return string(b.Rune()), mirrorStyle
	case lit:
		return "·", beamStyle
	}
	return ".", blockStyle
}

func (m model) grid() string {
	l := m.session.Level()
	lit := map[level.Point]bool{}
	for _, p := range m.session.Beam().CellsCrossed(l.Width(), l.Height()) {
		lit[p] = true
	}

	var b strings.Builder
	for y := l.Height() + 1; y >= 0; y-- {
		for x := 0; x <= l.Width()+1; x++ {
			p := level.P(x, y)
			r, style := m.cellRune(p, lit[p])
			if p == m.cursor {
				style = style.Inherit(cursorStyle)
			}
			b.WriteString(style.Render(" " + r + " "))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(m.grid())
	b.WriteString("\n")

	beam := m.session.Beam()
	b.WriteString(fmt.Sprintf("cursor %v  moves %d  mode %s  bounces %d",
		m.cursor, len(m.session.Moves()), m.session.Mode(), beam.Bounces))
	if m.session.Solved() {
		b.WriteString("  " + solvedStyle.Render("SOLVED"))
	}
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(errorStyle.Render(m.status) + "\n")
	}
	b.WriteString("\n" + m.help.View(keys))
	return docStyle.Render(b.String())
}

// Play runs the puzzle in the terminal until the player quits
func Play(s *puzzle.Session) error {
	p := tea.NewProgram(newModel(s), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
