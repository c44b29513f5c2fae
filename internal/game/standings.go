package game

import "sort"

// Standing pairs a roster position with that player's cumulative score.
type Standing struct {
	Player int
	Total  int
}

// PlayerTotal returns the sum of all entered scores in player idx's
// column. Unset cells contribute nothing, so adding an empty round
// never changes a total.
func (s *Session) PlayerTotal(idx int) int {
	total := 0
	for _, round := range s.rounds {
		if idx >= 0 && idx < len(round) && round[idx].Value != nil {
			total += *round[idx].Value
		}
	}
	return total
}

// Leaderboard returns every roster position paired with its total,
// ordered highest total first. The sort is stable: players with equal
// totals keep their roster order, so the display is deterministic.
func (s *Session) Leaderboard() []Standing {
	board := make([]Standing, len(s.players))
	for i := range s.players {
		board[i] = Standing{Player: i, Total: s.PlayerTotal(i)}
	}
	sort.SliceStable(board, func(a, b int) bool {
		return board[a].Total > board[b].Total
	})
	return board
}

// IsGameOver reports whether the game has ended: every cell is filled
// and exactly one player holds the highest total, which is at or above
// the target score. Multiple players tied at or above the target keep
// the game going for another round. That is the intended rule, not a
// defect.
func (s *Session) IsGameOver() bool {
	if len(s.players) == 0 {
		return false
	}
	for _, round := range s.rounds {
		for _, cell := range round {
			if cell.Value == nil {
				return false
			}
		}
	}

	best := s.PlayerTotal(0)
	winners := 1
	for i := 1; i < len(s.players); i++ {
		switch total := s.PlayerTotal(i); {
		case total > best:
			best = total
			winners = 1
		case total == best:
			winners++
		}
	}
	return best >= s.target && winners == 1
}
