package game

import (
	"encoding/json"
	"fmt"
)

// sessionState is the wire form of a Session. Keeping it separate from
// the Session itself lets the blob stay stable while the in-memory
// representation enforces its invariants on load.
type sessionState struct {
	Players      []Player `json:"players"`
	Rounds       []Round  `json:"rounds"`
	Started      bool     `json:"started"`
	TargetScore  int      `json:"target_score"`
	ScoreFloor   int      `json:"score_floor"`
	ScoreSpan    int      `json:"score_span"`
	Focus        *CellRef `json:"focus,omitempty"`
	NextPlayerID int      `json:"next_player_id"`
}

// MarshalJSON implements json.Marshaler.
func (s *Session) MarshalJSON() ([]byte, error) {
	state := sessionState{
		Players:      s.players,
		Rounds:       s.rounds,
		Started:      s.started,
		TargetScore:  s.target,
		ScoreFloor:   s.floor,
		ScoreSpan:    s.span,
		Focus:        s.focus,
		NextPlayerID: s.nextID,
	}
	return json.Marshal(state)
}

// UnmarshalJSON implements json.Unmarshaler. Structurally inconsistent
// blobs are rejected so callers can fall back to a fresh session.
func (s *Session) UnmarshalJSON(data []byte) error {
	var state sessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return err
	}

	for i, round := range state.Rounds {
		if len(round) != len(state.Players) {
			return fmt.Errorf("round %d has %d cells for %d players", i, len(round), len(state.Players))
		}
	}
	if f := state.Focus; f != nil {
		if f.Round < 0 || f.Round >= len(state.Rounds) || f.Player < 0 || f.Player >= len(state.Players) {
			return fmt.Errorf("focus %d/%d out of range", f.Round, f.Player)
		}
	}

	nextID := state.NextPlayerID
	for _, p := range state.Players {
		if p.ID >= nextID {
			nextID = p.ID + 1
		}
	}
	if nextID < 1 {
		nextID = 1
	}

	s.players = state.Players
	s.rounds = state.Rounds
	s.started = state.Started
	s.target = state.TargetScore
	s.floor = state.ScoreFloor
	s.span = state.ScoreSpan
	s.focus = state.Focus
	s.nextID = nextID
	if s.target == 0 {
		s.target = DefaultTargetScore
	}
	if s.span == 0 {
		s.floor = DefaultScoreFloor
		s.span = DefaultScoreSpan
	}
	return nil
}
