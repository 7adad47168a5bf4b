package ledger

import (
	"sort"

	"github.com/mlaroche/scoretally/internal/model"
)

// Rank produces the final ordering of players by total: descending for
// highest-wins, ascending for lowest-wins. Equal totals share a position
// and keep the registration order between them.
func Rank(s *model.Session) model.Ranking {
	byID := make(map[model.PlayerID]model.Player, len(s.Players))
	for _, p := range s.Players {
		byID[p.ID] = p
	}

	ordered := make([]model.Player, 0, len(s.Registered))
	for _, id := range s.Registered {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		ti := s.Totals[ordered[i].ID]
		tj := s.Totals[ordered[j].ID]
		if s.Goal == model.GoalLowest {
			return ti < tj
		}
		return ti > tj
	})

	ranking := make(model.Ranking, 0, len(ordered))
	for i, p := range ordered {
		position := i + 1
		if i > 0 && s.Totals[p.ID] == ranking[i-1].Total {
			position = ranking[i-1].Position
		}
		ranking = append(ranking, model.Rank{
			Position: position,
			Player:   p,
			Total:    s.Totals[p.ID],
		})
	}
	return ranking
}
