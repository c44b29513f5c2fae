// Package game implements the scorekeeping engine for Nerts-style card games.
//
// The main type is Session, which owns the player roster, the score grid
// (one row per round, one column per roster position) and the single
// focused cell that is currently open for entry.
//
// # Basic Usage
//
// Create a session, build a roster and play:
//
//	s := game.NewSession()
//	s.AddPlayer("Ann")
//	s.AddPlayer("Bob")
//	s.StartGame()
//	s.EnterScore(0, 0, 20)
//	s.EnterScore(0, 1, 30)
//	if s.IsGameOver() {
//	    board := s.Leaderboard()
//	    _ = board
//	}
//
// UI layers drive the session through the typed message contract instead
// of calling operations directly:
//
//	err := s.Apply(game.EnterScoreMsg{Round: 0, Player: 1, Value: -5})
//
// # Design
//
// Rounds are stored most-recent-first: index 0 is the newest round, which
// is also how the grid renders. The focused cell is a single optional
// coordinate on the Session rather than a flag on every cell, so "at most
// one cell is being edited" holds by construction. The leaderboard is a
// derived view recomputed on demand, never stored.
//
// A Session is not safe for concurrent use; it is expected to be owned by
// a single goroutine (the UI event loop) that applies one message at a
// time.
package game
