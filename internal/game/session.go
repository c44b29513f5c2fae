package game

import (
	"fmt"
)

// DefaultTargetScore is the score a single player must reach to end the
// game.
const DefaultTargetScore = 100

// Default display range for score coloring. A Nerts round can cost up to
// the 13-card nerts pile and pay out against the 52-card deck.
const (
	DefaultScoreFloor = -13
	DefaultScoreSpan  = 52
)

// Player is a roster entry. IDs increment within a session and survive a
// Reset; grid columns are addressed by roster position, not by ID.
type Player struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Cell holds one player's score for one round. A nil Value means the
// score has not been entered yet.
type Cell struct {
	Value *int `json:"value"`
}

// Round is one pass of score entry across the roster, one cell per
// roster position.
type Round []Cell

// CellRef addresses a single cell in the grid. Round indexes the
// most-recent-first round list; Player is a roster position.
type CellRef struct {
	Round  int `json:"round"`
	Player int `json:"player"`
}

// Session is the scorekeeping aggregate: the roster, the score grid and
// the focused cell. All mutation goes through its operations (or Apply).
// A Session must be owned by a single goroutine.
type Session struct {
	players []Player
	rounds  []Round // index 0 is the most recent round
	started bool
	target  int
	floor   int // display range only, no effect on rules
	span    int
	focus   *CellRef
	nextID  int
}

// SessionOption configures a Session during creation.
type SessionOption func(*Session)

// WithTargetScore overrides the default winning threshold.
func WithTargetScore(target int) SessionOption {
	return func(s *Session) { s.target = target }
}

// WithScoreRange overrides the display range used for score coloring.
func WithScoreRange(floor, span int) SessionOption {
	return func(s *Session) {
		s.floor = floor
		s.span = span
	}
}

// NewSession creates an empty Setup-state session.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		target: DefaultTargetScore,
		floor:  DefaultScoreFloor,
		span:   DefaultScoreSpan,
		nextID: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Started reports whether the game is in progress (roster frozen,
// rounds accumulating).
func (s *Session) Started() bool { return s.started }

// TargetScore returns the winning threshold.
func (s *Session) TargetScore() int { return s.target }

// ScoreRange returns the cosmetic display range (floor, span).
func (s *Session) ScoreRange() (floor, span int) { return s.floor, s.span }

// Players returns a copy of the roster.
func (s *Session) Players() []Player {
	out := make([]Player, len(s.players))
	copy(out, s.players)
	return out
}

// PlayerCount returns the roster size.
func (s *Session) PlayerCount() int { return len(s.players) }

// RoundCount returns the number of rounds created so far.
func (s *Session) RoundCount() int { return len(s.rounds) }

// CellValue returns the value at the given coordinate. ok is false for
// unset cells and out-of-range coordinates.
func (s *Session) CellValue(round, player int) (value int, ok bool) {
	if round < 0 || round >= len(s.rounds) || player < 0 || player >= len(s.rounds[round]) {
		return 0, false
	}
	if v := s.rounds[round][player].Value; v != nil {
		return *v, true
	}
	return 0, false
}

// AddPlayer appends a player to the roster. An empty name is a silent
// no-op. Roster edits are a Setup-state operation by convention; the
// engine tolerates them at any time, widening any existing rounds so
// the grid always matches the roster.
func (s *Session) AddPlayer(name string) {
	if name == "" {
		return
	}
	s.players = append(s.players, Player{ID: s.nextID, Name: name})
	s.nextID++
	for r := range s.rounds {
		s.rounds[r] = append(s.rounds[r], Cell{})
	}
}

// RemovePlayer removes the player at the given roster position,
// shifting later positions down. Out-of-range positions are a silent
// no-op. Any existing rounds are compacted to match the roster; this is
// a degenerate path since rounds only exist after the game starts.
func (s *Session) RemovePlayer(idx int) {
	if idx < 0 || idx >= len(s.players) {
		return
	}
	s.players = append(s.players[:idx], s.players[idx+1:]...)
	for r := range s.rounds {
		s.rounds[r] = append(s.rounds[r][:idx], s.rounds[r][idx+1:]...)
	}
	if s.focus == nil {
		return
	}
	switch {
	case len(s.players) == 0 || s.focus.Player == idx:
		s.focus = nil
	case s.focus.Player > idx:
		s.focus.Player--
	}
}

// StartGame transitions Setup -> InProgress: the first round is created
// with every cell unset and its first cell takes focus. Rosters of 0 or
// 1 players produce a degenerate round; the UI is expected not to offer
// the transition below 2 players.
func (s *Session) StartGame() {
	if s.started {
		return
	}
	s.started = true
	s.pushRound()
}

// Reset returns to Setup state for a fresh game. The roster carries
// over; rounds, focus and progress are discarded.
func (s *Session) Reset() {
	s.rounds = nil
	s.focus = nil
	s.started = false
}

// EnterScore records value at the given cell and moves focus to the
// next unset cell, scanning most-recent-round-first and in roster order
// within a round. When the grid is full and the game is not over, a new
// round is created and its first cell focused; when the game is over no
// cell keeps focus. Coordinates are expected to be pre-validated by the
// caller; out-of-range coordinates are a programming error.
func (s *Session) EnterScore(round, player, value int) error {
	if round < 0 || round >= len(s.rounds) || player < 0 || player >= len(s.rounds[round]) {
		return fmt.Errorf("no cell at round %d, player %d", round, player)
	}
	v := value
	s.rounds[round][player].Value = &v
	s.focus = nil
	if ref, ok := s.nextUnset(); ok {
		s.focus = &ref
	} else if !s.IsGameOver() {
		s.pushRound()
	}
	return nil
}

// SelectCell re-focuses an arbitrary cell so a previously entered value
// can be corrected. The cell keeps its value.
func (s *Session) SelectCell(round, player int) error {
	if round < 0 || round >= len(s.rounds) || player < 0 || player >= len(s.rounds[round]) {
		return fmt.Errorf("no cell at round %d, player %d", round, player)
	}
	s.focus = &CellRef{Round: round, Player: player}
	return nil
}

// FocusedCell returns the coordinate currently open for entry. When no
// cell holds focus (game over, or Setup state) it returns (0, 0) as a
// safe fallback rather than an error.
func (s *Session) FocusedCell() CellRef {
	if s.focus == nil {
		return CellRef{}
	}
	return *s.focus
}

// HasFocus reports whether any cell is currently open for entry.
func (s *Session) HasFocus() bool { return s.focus != nil }

// IsEditing reports whether the given cell is the focused one.
func (s *Session) IsEditing(round, player int) bool {
	return s.focus != nil && s.focus.Round == round && s.focus.Player == player
}

// nextUnset scans for the first unset cell, most recent round first and
// roster order within a round. The scan order determines how the cursor
// walks the grid and must not change.
func (s *Session) nextUnset() (CellRef, bool) {
	for r, round := range s.rounds {
		for p, cell := range round {
			if cell.Value == nil {
				return CellRef{Round: r, Player: p}, true
			}
		}
	}
	return CellRef{}, false
}

// pushRound prepends a fresh all-unset round and focuses its first
// cell. With an empty roster the round is empty and nothing is focused.
func (s *Session) pushRound() {
	round := make(Round, len(s.players))
	s.rounds = append([]Round{round}, s.rounds...)
	if len(round) > 0 {
		s.focus = &CellRef{Round: 0, Player: 0}
	} else {
		s.focus = nil
	}
}
