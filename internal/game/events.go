package game

import "fmt"

// MsgKind identifies a session message with type safety.
type MsgKind string

// MsgKind constants for the session update contract. These mirror the
// events a UI layer produces: roster edits, the two game transitions,
// score entry and cell selection.
const (
	MsgAddPlayer    MsgKind = "add_player"
	MsgRemovePlayer MsgKind = "remove_player"
	MsgStartGame    MsgKind = "start_game"
	MsgNewGame      MsgKind = "new_game"
	MsgEnterScore   MsgKind = "enter_score"
	MsgSelectCell   MsgKind = "select_cell"
)

// String returns the string representation of the message kind.
func (k MsgKind) String() string { return string(k) }

// Msg is a session mutation message. UI layers translate user input
// into messages and feed them through Session.Apply one at a time.
type Msg interface {
	Kind() MsgKind
}

// AddPlayerMsg appends a named player to the roster.
type AddPlayerMsg struct {
	Name string
}

func (AddPlayerMsg) Kind() MsgKind { return MsgAddPlayer }

// RemovePlayerMsg removes the player at a roster position.
type RemovePlayerMsg struct {
	Player int
}

func (RemovePlayerMsg) Kind() MsgKind { return MsgRemovePlayer }

// StartGameMsg transitions Setup -> InProgress.
type StartGameMsg struct{}

func (StartGameMsg) Kind() MsgKind { return MsgStartGame }

// NewGameMsg transitions back to Setup, keeping the roster.
type NewGameMsg struct{}

func (NewGameMsg) Kind() MsgKind { return MsgNewGame }

// EnterScoreMsg records a score at a cell.
type EnterScoreMsg struct {
	Round  int
	Player int
	Value  int
}

func (EnterScoreMsg) Kind() MsgKind { return MsgEnterScore }

// SelectCellMsg re-focuses a cell for correction.
type SelectCellMsg struct {
	Round  int
	Player int
}

func (SelectCellMsg) Kind() MsgKind { return MsgSelectCell }

// Apply dispatches a message to the matching operation. It is the
// single mutation entry point for UI layers; each message is fully
// applied (or rejected) before the next is accepted.
func (s *Session) Apply(msg Msg) error {
	switch m := msg.(type) {
	case AddPlayerMsg:
		s.AddPlayer(m.Name)
		return nil
	case RemovePlayerMsg:
		s.RemovePlayer(m.Player)
		return nil
	case StartGameMsg:
		s.StartGame()
		return nil
	case NewGameMsg:
		s.Reset()
		return nil
	case EnterScoreMsg:
		return s.EnterScore(m.Round, m.Player, m.Value)
	case SelectCellMsg:
		return s.SelectCell(m.Round, m.Player)
	default:
		return fmt.Errorf("unhandled message kind %q", msg.Kind())
	}
}
