package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nertzpro/scorepad/internal/game"
)

const roundLabelWidth = 5

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(" ♠ NERTS SCOREPAD ♠ "))
	b.WriteString("\n\n")

	if m.session.Started() {
		b.WriteString(m.viewGame())
	} else {
		b.WriteString(m.viewSetup())
	}

	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(ErrorStyle.Render(m.errMsg))
	}
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(m.helpLine()))
	return b.String()
}

func (m *Model) viewSetup() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Players"))
	b.WriteString("\n")

	players := m.session.Players()
	if len(players) == 0 {
		b.WriteString(HelpStyle.Render("  nobody yet — type a name and press enter"))
		b.WriteString("\n")
	}
	for i, p := range players {
		line := fmt.Sprintf("%d. %s", i+1, p.Name)
		if i == m.selected {
			b.WriteString(SelectedPlayerStyle.Render("▸ " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.nameInput.View())
	b.WriteString("\n")
	return b.String()
}

func (m *Model) viewGame() string {
	over := m.session.IsGameOver()
	n := m.session.PlayerCount()

	// Standings drive the medal decoration once the game ends.
	board := m.session.Leaderboard()
	place := make(map[int]int, n)
	for i, st := range board {
		place[st.Player] = i
	}

	heads := make([]string, n)
	widths := make([]int, n)
	for p := 0; p < n; p++ {
		heads[p] = m.session.UniquePrefix(p)
		if over {
			if md := medal(place[p]); md != "" {
				heads[p] = md + " " + heads[p]
			}
		}
		widths[p] = max(lipgloss.Width(heads[p]), 5) + 2
	}

	var b strings.Builder

	// Header: name prefixes, then running totals.
	b.WriteString(pad("", roundLabelWidth))
	for p := 0; p < n; p++ {
		b.WriteString(pad(HeaderStyle.Render(heads[p]), widths[p]))
	}
	b.WriteString("\n")
	b.WriteString(pad("", roundLabelWidth))
	for p := 0; p < n; p++ {
		b.WriteString(pad(TotalStyle.Render(strconv.Itoa(m.session.PlayerTotal(p))), widths[p]))
	}
	b.WriteString("\n\n")

	m.gridView.SetContent(m.renderGridRows(widths, over))
	b.WriteString(m.gridView.View())
	b.WriteString("\n\n")

	if over {
		b.WriteString(m.renderGameOver(board))
	} else {
		focused := m.session.FocusedCell()
		label := fmt.Sprintf("R%d · %s ", m.session.RoundCount()-focused.Round, m.session.UniquePrefix(focused.Player))
		b.WriteString(label)
		b.WriteString(m.scoreInput.View())
		b.WriteString("\n")
	}
	return b.String()
}

// renderGridRows renders the score grid, newest round on top like the
// original app. The focused cell is the entry point; the cursor is the
// navigation highlight for corrections.
func (m *Model) renderGridRows(widths []int, over bool) string {
	floor, span := m.session.ScoreRange()
	rows := make([]string, 0, m.session.RoundCount())

	for r := 0; r < m.session.RoundCount(); r++ {
		var b strings.Builder
		b.WriteString(pad(HelpStyle.Render(fmt.Sprintf("R%d", m.session.RoundCount()-r)), roundLabelWidth))

		for p := 0; p < len(widths); p++ {
			text := "--"
			style := UnsetCellStyle
			if v, ok := m.session.CellValue(r, p); ok {
				text = strconv.Itoa(v)
				style = lipgloss.NewStyle().Foreground(m.theme.ScoreColor(v, floor, span))
			}

			switch {
			case !over && m.session.IsEditing(r, p):
				style = FocusedCellStyle
				if text == "--" {
					text = "··"
				}
			case !over && m.cursor == (game.CellRef{Round: r, Player: p}):
				style = CursorCellStyle
			}

			b.WriteString(pad(style.Render(" "+text+" "), widths[p]))
		}
		rows = append(rows, b.String())
	}
	return strings.Join(rows, "\n")
}

func (m *Model) renderGameOver(board []game.Standing) string {
	players := m.session.Players()

	var b strings.Builder
	winner := players[board[0].Player]
	b.WriteString(WinnerStyle.Render(fmt.Sprintf("GAME OVER — %s takes it with %d", winner.Name, board[0].Total)))
	b.WriteString("\n\n")
	for i, st := range board {
		md := medal(i)
		if md == "" {
			md = "  "
		}
		b.WriteString(fmt.Sprintf("%s %s: %d\n", md, players[st.Player].Name, st.Total))
	}
	return b.String()
}

func (m *Model) helpLine() string {
	switch {
	case !m.session.Started():
		return "enter: add player • ↑/↓: select • ctrl+d: remove • ctrl+s: start • ctrl+c: quit"
	case m.session.IsGameOver():
		return "n: new game (roster carries over) • q: quit"
	default:
		return "type a score + enter • arrows: pick cell • enter on a filled cell: edit • ctrl+n: new game • ctrl+c: quit"
	}
}

// pad right-pads styled text to a display width, ANSI-aware.
func pad(s string, w int) string {
	if n := w - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
