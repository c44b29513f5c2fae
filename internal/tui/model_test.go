package tui

import (
	"errors"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nertzpro/scorepad/internal/game"
)

// memStore keeps saves in memory so tests never touch disk.
type memStore struct {
	saves    int
	failSave error
}

func (s *memStore) Load() (*game.Session, bool, error) { return nil, false, nil }

func (s *memStore) Save(*game.Session) error {
	if s.failSave != nil {
		return s.failSave
	}
	s.saves++
	return nil
}

func testModel(t *testing.T) (*Model, *memStore) {
	t.Helper()
	st := &memStore{}
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	return New(game.NewSession(), st, logger, DefaultTheme(true)), st
}

func typeRunes(m *Model, s string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func press(m *Model, key tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: key})
	return cmd
}

func TestSetupAddsAndRemovesPlayers(t *testing.T) {
	t.Parallel()

	m, st := testModel(t)

	typeRunes(m, "Ann")
	press(m, tea.KeyEnter)
	typeRunes(m, "Bob")
	press(m, tea.KeyEnter)

	players := m.session.Players()
	require.Len(t, players, 2)
	assert.Equal(t, "Ann", players[0].Name)
	assert.Equal(t, "Bob", players[1].Name)
	assert.Equal(t, 2, st.saves, "each roster change is persisted")

	// Whitespace-only input never reaches the engine
	typeRunes(m, "   ")
	press(m, tea.KeyEnter)
	assert.Equal(t, 2, m.session.PlayerCount())

	press(m, tea.KeyUp)
	press(m, tea.KeyCtrlD)
	require.Len(t, m.session.Players(), 1)
	assert.Equal(t, "Bob", m.session.Players()[0].Name)
}

func TestStartRequiresTwoPlayers(t *testing.T) {
	t.Parallel()

	m, _ := testModel(t)

	typeRunes(m, "Ann")
	press(m, tea.KeyEnter)
	press(m, tea.KeyCtrlS)

	assert.False(t, m.session.Started())
	assert.NotEmpty(t, m.errMsg)

	typeRunes(m, "Bob")
	press(m, tea.KeyEnter)
	press(m, tea.KeyCtrlS)

	assert.True(t, m.session.Started())
	assert.Equal(t, game.CellRef{Round: 0, Player: 0}, m.session.FocusedCell())
}

func TestScoreEntryThroughKeys(t *testing.T) {
	t.Parallel()

	m, _ := testModel(t)
	for _, name := range []string{"Ann", "Bob"} {
		typeRunes(m, name)
		press(m, tea.KeyEnter)
	}
	press(m, tea.KeyCtrlS)

	typeRunes(m, "20")
	press(m, tea.KeyEnter)

	v, ok := m.session.CellValue(0, 0)
	require.True(t, ok)
	assert.Equal(t, 20, v)
	assert.Equal(t, game.CellRef{Round: 0, Player: 1}, m.session.FocusedCell())

	// Negative scores are a normal part of Nerts
	typeRunes(m, "-5")
	press(m, tea.KeyEnter)
	v, ok = m.session.CellValue(0, 1)
	require.True(t, ok)
	assert.Equal(t, -5, v)

	// Round was full and the game is not over: a new round exists
	assert.Equal(t, 2, m.session.RoundCount())
}

func TestScoreInputFiltersLetters(t *testing.T) {
	t.Parallel()

	m, _ := testModel(t)
	for _, name := range []string{"Ann", "Bob"} {
		typeRunes(m, name)
		press(m, tea.KeyEnter)
	}
	press(m, tea.KeyCtrlS)

	typeRunes(m, "abc")
	assert.Empty(t, m.scoreInput.Value())

	typeRunes(m, "1a2")
	assert.Equal(t, "12", m.scoreInput.Value())
}

func TestGameOverThenNewGameKeepsRoster(t *testing.T) {
	t.Parallel()

	m, _ := testModel(t)
	for _, name := range []string{"Ann", "Bob"} {
		typeRunes(m, name)
		press(m, tea.KeyEnter)
	}
	press(m, tea.KeyCtrlS)

	for _, score := range []string{"105", "30"} {
		typeRunes(m, score)
		press(m, tea.KeyEnter)
	}

	require.True(t, m.session.IsGameOver())
	assert.False(t, m.session.HasFocus())

	// "n" starts the next game with the same roster
	typeRunes(m, "n")
	assert.False(t, m.session.Started())
	assert.Len(t, m.session.Players(), 2)
}

func TestSaveFailureAborts(t *testing.T) {
	t.Parallel()

	m, st := testModel(t)
	st.failSave = errors.New("disk full")

	typeRunes(m, "Ann")
	press(m, tea.KeyEnter)

	require.Error(t, m.Err())
	assert.Contains(t, m.Err().Error(), "disk full")
	assert.True(t, m.quitting)
}

func TestViewSmoke(t *testing.T) {
	t.Parallel()

	m, _ := testModel(t)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	out := m.View()
	assert.Contains(t, out, "Players")

	for _, name := range []string{"Anna", "Annika"} {
		typeRunes(m, name)
		press(m, tea.KeyEnter)
	}
	press(m, tea.KeyCtrlS)

	out = m.View()
	assert.Contains(t, out, "Anna")
	assert.Contains(t, out, "Anni")
	assert.Contains(t, out, "--")

	// Finish the game; the banner and medals replace the entry line
	for _, score := range []string{"105", "30"} {
		typeRunes(m, score)
		press(m, tea.KeyEnter)
	}
	out = m.View()
	assert.Contains(t, out, "GAME OVER")
	assert.Contains(t, out, "🥇")
}
