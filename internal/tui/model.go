// Package tui renders the scorekeeping session in the terminal.
//
// The model owns no game rules: it translates key presses into
// game.Msg values, feeds them through Session.Apply, and saves after
// every applied message. Rendering is a pure function of session
// queries.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/nertzpro/scorepad/internal/game"
	"github.com/nertzpro/scorepad/internal/store"
)

// Model is the Bubble Tea model for the scorepad.
type Model struct {
	session *game.Session
	store   store.Store
	logger  *log.Logger
	theme   Theme

	// UI components
	nameInput  textinput.Model
	scoreInput textinput.Model
	gridView   viewport.Model

	// State
	cursor   game.CellRef // grid highlight for re-editing filled cells
	selected int          // roster selection on the setup screen
	errMsg   string
	fatal    error
	quitting bool

	// Dimensions
	width  int
	height int
}

// New creates a model around a session, which may be freshly created or
// restored mid-game from the store.
func New(session *game.Session, st store.Store, logger *log.Logger, theme Theme) *Model {
	name := textinput.New()
	name.Placeholder = "Add player"
	name.CharLimit = 24
	name.Width = 24
	name.Prompt = "❯ "
	name.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)

	score := textinput.New()
	score.Placeholder = "score"
	score.CharLimit = 4
	score.Width = 8
	score.Prompt = "❯ "
	score.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)

	m := &Model{
		session:    session,
		store:      st,
		logger:     logger.WithPrefix("tui"),
		theme:      theme,
		nameInput:  name,
		scoreInput: score,
		gridView:   viewport.New(40, 10),
		cursor:     session.FocusedCell(),
	}
	if session.Started() {
		m.scoreInput.Focus()
	} else {
		m.nameInput.Focus()
	}
	return m
}

// Err returns the save failure that aborted the session, if any.
func (m *Model) Err() error { return m.fatal }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.gridView.Width = max(msg.Width-2, 20)
		m.gridView.Height = max(msg.Height-10, 3)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, m.updateInputs(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		// Every mutation is already saved; quitting loses nothing.
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case !m.session.Started():
		return m, m.handleSetupKey(msg)
	case m.session.IsGameOver():
		return m, m.handleGameOverKey(msg)
	default:
		return m, m.handlePlayKey(msg)
	}
}

func (m *Model) handleSetupKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		name := strings.TrimSpace(m.nameInput.Value())
		m.nameInput.SetValue("")
		if name == "" {
			return nil
		}
		cmd := m.applyAndSave(game.AddPlayerMsg{Name: name})
		m.selected = m.session.PlayerCount() - 1
		return cmd

	case "up":
		if m.selected > 0 {
			m.selected--
		}
		return nil

	case "down":
		if m.selected < m.session.PlayerCount()-1 {
			m.selected++
		}
		return nil

	case "ctrl+d", "delete":
		if m.session.PlayerCount() == 0 {
			return nil
		}
		cmd := m.applyAndSave(game.RemovePlayerMsg{Player: m.selected})
		if m.selected >= m.session.PlayerCount() {
			m.selected = max(m.session.PlayerCount()-1, 0)
		}
		return cmd

	case "ctrl+s":
		if m.session.PlayerCount() < 2 {
			m.errMsg = "need at least 2 players to start"
			return nil
		}
		cmd := m.applyAndSave(game.StartGameMsg{})
		m.cursor = m.session.FocusedCell()
		m.nameInput.Blur()
		m.scoreInput.Focus()
		return cmd

	default:
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return cmd
	}
}

func (m *Model) handlePlayKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		return m.commitEntry()

	case "up":
		m.moveCursor(-1, 0)
		return nil
	case "down":
		m.moveCursor(1, 0)
		return nil
	case "left":
		m.moveCursor(0, -1)
		return nil
	case "right":
		m.moveCursor(0, 1)
		return nil

	case "pgup":
		m.gridView.HalfPageUp()
		return nil
	case "pgdown":
		m.gridView.HalfPageDown()
		return nil

	case "ctrl+n":
		return m.startNewGame()

	case "backspace":
		var cmd tea.Cmd
		m.scoreInput, cmd = m.scoreInput.Update(msg)
		return cmd

	default:
		// Only digits and a sign reach the score input; everything
		// else would just be noise in a number field.
		if msg.Type != tea.KeyRunes {
			return nil
		}
		filtered := msg.Runes[:0:0]
		for _, r := range msg.Runes {
			if (r >= '0' && r <= '9') || r == '-' {
				filtered = append(filtered, r)
			}
		}
		if len(filtered) == 0 {
			return nil
		}
		msg.Runes = filtered
		var cmd tea.Cmd
		m.scoreInput, cmd = m.scoreInput.Update(msg)
		return cmd
	}
}

func (m *Model) handleGameOverKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "n", "ctrl+n":
		return m.startNewGame()
	case "q", "esc":
		m.quitting = true
		return tea.Quit
	}
	return nil
}

// commitEntry records the typed score at the focused cell. With nothing
// typed, enter on a filled cell re-opens it for correction instead.
func (m *Model) commitEntry() tea.Cmd {
	raw := strings.TrimSpace(m.scoreInput.Value())
	if raw == "" {
		if _, ok := m.session.CellValue(m.cursor.Round, m.cursor.Player); ok {
			return m.applyAndSave(game.SelectCellMsg{Round: m.cursor.Round, Player: m.cursor.Player})
		}
		return nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		m.errMsg = fmt.Sprintf("%q is not a number", raw)
		m.scoreInput.SetValue("")
		return nil
	}

	target := m.session.FocusedCell()
	cmd := m.applyAndSave(game.EnterScoreMsg{Round: target.Round, Player: target.Player, Value: value})
	m.scoreInput.SetValue("")
	m.cursor = m.session.FocusedCell()
	return cmd
}

func (m *Model) startNewGame() tea.Cmd {
	cmd := m.applyAndSave(game.NewGameMsg{})
	m.cursor = game.CellRef{}
	m.selected = 0
	m.scoreInput.Blur()
	m.scoreInput.SetValue("")
	m.nameInput.Focus()
	return cmd
}

func (m *Model) moveCursor(dr, dp int) {
	m.cursor.Round = clamp(m.cursor.Round+dr, 0, m.session.RoundCount()-1)
	m.cursor.Player = clamp(m.cursor.Player+dp, 0, m.session.PlayerCount()-1)
}

// applyAndSave feeds one message through the session and persists the
// result. A rejected message becomes a status line; a failed save
// aborts the program, matching the reference behavior of refusing to
// keep playing without durability.
func (m *Model) applyAndSave(msg game.Msg) tea.Cmd {
	m.errMsg = ""
	if err := m.session.Apply(msg); err != nil {
		m.logger.Error("rejected message", "kind", msg.Kind(), "error", err)
		m.errMsg = err.Error()
		return nil
	}
	m.logger.Debug("applied message", "kind", msg.Kind())

	if err := m.store.Save(m.session); err != nil {
		m.logger.Error("failed to save session", "error", err)
		m.fatal = fmt.Errorf("failed to save session: %w", err)
		m.quitting = true
		return tea.Quit
	}
	return nil
}

func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	cmds = append(cmds, cmd)
	m.scoreInput, cmd = m.scoreInput.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
