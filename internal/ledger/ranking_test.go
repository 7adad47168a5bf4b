package ledger

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mlaroche/scoretally/internal/model"
)

type RankingSuite struct {
	suite.Suite
}

func TestRankingSuite(t *testing.T) {
	suite.Run(t, new(RankingSuite))
}

func (s *RankingSuite) newSession(goal model.Goal, totals map[model.PlayerID]float64, order ...model.PlayerID) *model.Session {
	players := make([]model.Player, 0, len(order))
	for _, id := range order {
		players = append(players, model.Player{ID: id, Name: string(id)})
	}
	session := &model.Session{Players: players, Goal: goal}
	s.Require().NoError(Init(session))
	for id, total := range totals {
		session.Totals[id] = total
	}
	return session
}

func (s *RankingSuite) TestHighestWinsDescending() {
	session := s.newSession(model.GoalHighest,
		map[model.PlayerID]float64{"a": 5, "b": 12, "c": 3}, "a", "b", "c")

	ranking := Rank(session)

	s.Require().Len(ranking, 3)
	s.Equal(model.PlayerID("b"), ranking[0].Player.ID)
	s.Equal(model.PlayerID("a"), ranking[1].Player.ID)
	s.Equal(model.PlayerID("c"), ranking[2].Player.ID)
	s.Equal([]int{1, 2, 3}, positions(ranking))
}

func (s *RankingSuite) TestLowestWinsAscending() {
	// Scenario: totals {A:5, B:5, C:3}, lowest wins: C first, A and B
	// tied at position 2 in registration order
	session := s.newSession(model.GoalLowest,
		map[model.PlayerID]float64{"a": 5, "b": 5, "c": 3}, "a", "b", "c")

	ranking := Rank(session)

	s.Equal(model.PlayerID("c"), ranking[0].Player.ID)
	s.Equal(model.PlayerID("a"), ranking[1].Player.ID)
	s.Equal(model.PlayerID("b"), ranking[2].Player.ID)
	s.Equal([]int{1, 2, 2}, positions(ranking))
}

func (s *RankingSuite) TestTieBreakIgnoresDisplayReorder() {
	session := s.newSession(model.GoalHighest,
		map[model.PlayerID]float64{"a": 5, "b": 5}, "a", "b")
	s.Require().NoError(Reorder(session, []model.PlayerID{"b", "a"}))

	ranking := Rank(session)

	// Registration order wins even after columns were reordered
	s.Equal(model.PlayerID("a"), ranking[0].Player.ID)
	s.Equal(model.PlayerID("b"), ranking[1].Player.ID)
	s.Equal([]int{1, 1}, positions(ranking))
}

func positions(r model.Ranking) []int {
	out := make([]int, len(r))
	for i, rank := range r {
		out[i] = rank.Position
	}
	return out
}
