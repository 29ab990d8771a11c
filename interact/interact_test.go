package interact

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdginn/go-laser-puzzle/level"
	"github.com/jdginn/go-laser-puzzle/puzzle"
)

func introModel(t *testing.T) model {
	t.Helper()
	l, err := level.ReadFile(filepath.Join("..", "testdata", "levels", "intro.txt"))
	require.NoError(t, err)
	return newModel(puzzle.NewSession(l))
}

func press(t *testing.T, m model, msgs ...tea.KeyMsg) model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestCursorStartsOnFirstMirror(t *testing.T) {
	m := introModel(t)
	assert.Equal(t, level.P(4, 1), m.cursor)
}

func TestCursorMovesAndClamps(t *testing.T) {
	m := introModel(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp}, runes("k"))
	assert.Equal(t, level.P(4, 3), m.cursor)

	m = press(t, m, runes("l"), runes("l"), runes("l"))
	assert.Equal(t, level.P(5, 3), m.cursor)

	m = press(t, m, runes("j"), runes("j"), runes("j"), tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, level.P(4, 1), m.cursor)
}

func TestRotateSolvesIntro(t *testing.T) {
	m := introModel(t)
	assert.NotContains(t, m.View(), "SOLVED")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.session.Solved())
	assert.Equal(t, []level.Point{level.P(4, 1)}, m.session.Moves())
	assert.Contains(t, m.View(), "SOLVED")
	assert.Empty(t, m.status)
}

func TestRotateRejected(t *testing.T) {
	m := introModel(t)
	m = press(t, m, runes("h"), runes("h"), runes("k"))
	assert.Equal(t, level.P(2, 2), m.cursor)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, m.status, level.ErrNotMirror.Error())
	assert.Empty(t, m.session.Moves())
}

func TestQuit(t *testing.T) {
	m := introModel(t)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestGrid(t *testing.T) {
	m := introModel(t)
	lines := strings.Split(strings.TrimRight(m.grid(), "\n"), "\n")
	// the grid plus its perimeter ring
	require.Len(t, lines, 6)
	assert.Contains(t, lines[1], "F")
	assert.Contains(t, lines[4], "S")
	assert.Contains(t, lines[3], "x")
	assert.Contains(t, lines[4], "·")
}
