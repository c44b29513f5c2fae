package game

import "strings"

// UniquePrefix returns the shortest prefix of player idx's name that no
// other roster name shares case-insensitively at the same length (other
// names are clamped when shorter). The prefix grows from one rune until
// it is collision free; the full name is the fallback when no prefix
// is. Display layers use this to keep grid columns narrow even with
// similar names.
func (s *Session) UniquePrefix(idx int) string {
	if idx < 0 || idx >= len(s.players) {
		return ""
	}
	name := []rune(s.players[idx].Name)

	for n := 1; n <= len(name); n++ {
		prefix := strings.ToLower(string(name[:n]))
		unique := true
		for other, p := range s.players {
			if other == idx {
				continue
			}
			runes := []rune(p.Name)
			clamp := n
			if clamp > len(runes) {
				clamp = len(runes)
			}
			if strings.ToLower(string(runes[:clamp])) == prefix {
				unique = false
				break
			}
		}
		if unique {
			return string(name[:n])
		}
	}
	return s.players[idx].Name
}
