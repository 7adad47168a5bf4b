package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mlaroche/scoretally/internal/model"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

func (s *IntegrationSuite) TearDownTest() {
	s.Require().NoError(s.app.Close())
}

// Test: complete flow from profile creation to a recorded game
func (s *IntegrationSuite) TestCompleteGameFlow() {
	s.app.MockIDs.Queue("alice", "bob", "game-1")

	// Step 1: Register two profiles
	alice, err := s.app.ProfileService.Create(s.ctx, "Alice", "#ff0000")
	s.Require().NoError(err)
	bob, err := s.app.ProfileService.Create(s.ctx, "Bob", "#00ff00")
	s.Require().NoError(err)

	// Step 2: Start a session, highest total wins
	session, err := s.app.SessionController.Create(s.ctx, "", []model.PlayerID{alice.ID, bob.ID}, model.GoalHighest, nil)
	s.Require().NoError(err)
	s.Equal(model.SessionID("game-1"), session.ID)
	s.Require().Len(session.LineOrder, 1)

	// Step 3: Play two full rounds; completing a line opens the next one
	line1 := session.LineOrder[0]
	_, err = s.app.SessionController.SetValue(s.ctx, session.ID, line1, alice.ID, "10")
	s.Require().NoError(err)
	result, err := s.app.SessionController.SetValue(s.ctx, session.ID, line1, bob.ID, "8")
	s.Require().NoError(err)
	s.Require().Len(result.Session.LineOrder, 2)

	line2 := result.Session.LineOrder[1]
	_, err = s.app.SessionController.SetValue(s.ctx, session.ID, line2, alice.ID, "5")
	s.Require().NoError(err)
	result, err = s.app.SessionController.SetValue(s.ctx, session.ID, line2, bob.ID, "9")
	s.Require().NoError(err)

	s.Equal(15.0, result.Session.Totals[alice.ID])
	s.Equal(17.0, result.Session.Totals[bob.ID])

	// Step 4: A profile in a live session cannot be deleted
	err = s.app.ProfileService.Delete(s.ctx, alice.ID)
	s.ErrorIs(err, model.ErrProfileInUse)

	// Step 5: End the game
	s.app.MockClock.Advance(time.Hour)
	end, err := s.app.SessionController.End(s.ctx, session.ID, "Friday night")
	s.Require().NoError(err)
	s.Require().Len(end.Ranking, 2)
	s.Equal(bob.ID, end.Ranking[0].Player.ID)
	s.Equal(1, end.Ranking[0].Position)
	s.Equal(alice.ID, end.Ranking[1].Player.ID)
	s.Equal(2, end.Ranking[1].Position)

	// Step 6: The game shows up in history
	games, err := s.app.HistoryService.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(games, 1)
	s.Equal("Friday night", games[0].Title)
	s.True(games[0].Finished)

	found, err := s.app.HistoryService.Search(s.ctx, "friday")
	s.Require().NoError(err)
	s.Len(found, 1)

	// Step 7: With the session gone, the profile can be deleted; the
	// recorded game keeps its own copy of the player
	s.Require().NoError(s.app.ProfileService.Delete(s.ctx, alice.ID))
	game, err := s.app.HistoryService.Get(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Equal("Alice", game.Players[0].Name)
}

// Test: an in-progress save can be resumed after the live session is gone
func (s *IntegrationSuite) TestSaveAndResumeFlow() {
	s.app.MockIDs.Queue("alice", "bob", "game-1")

	alice, err := s.app.ProfileService.Create(s.ctx, "Alice", "#ff0000")
	s.Require().NoError(err)
	bob, err := s.app.ProfileService.Create(s.ctx, "Bob", "#00ff00")
	s.Require().NoError(err)

	session, err := s.app.SessionController.Create(s.ctx, "", []model.PlayerID{alice.ID, bob.ID}, model.GoalLowest, nil)
	s.Require().NoError(err)
	line := session.LineOrder[0]

	_, err = s.app.SessionController.SetValue(s.ctx, session.ID, line, alice.ID, "42")
	s.Require().NoError(err)

	snapshot, err := s.app.SessionController.Save(s.ctx, session.ID, "Paused game")
	s.Require().NoError(err)
	s.False(snapshot.Finished)

	// The in-progress record carries the entered values
	game, err := s.app.HistoryService.Get(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Equal(42.0, game.Totals[alice.ID])

	restored := game.Session()
	s.Equal(42.0, restored.Totals[alice.ID])
	s.Equal(model.GoalLowest, restored.Goal)
}

// Test: limit crossing fires once, exception holds until reset
func (s *IntegrationSuite) TestLimitFlow() {
	s.app.MockIDs.Queue("alice", "bob", "game-1")

	alice, err := s.app.ProfileService.Create(s.ctx, "Alice", "#ff0000")
	s.Require().NoError(err)
	bob, err := s.app.ProfileService.Create(s.ctx, "Bob", "#00ff00")
	s.Require().NoError(err)

	limit := 50.0
	session, err := s.app.SessionController.Create(s.ctx, "", []model.PlayerID{alice.ID, bob.ID}, model.GoalLowest, &limit)
	s.Require().NoError(err)
	line := session.LineOrder[0]

	result, err := s.app.SessionController.SetValue(s.ctx, session.ID, line, alice.ID, "55")
	s.Require().NoError(err)
	s.Require().NotNil(result.LimitReached)
	s.Equal(55.0, result.LimitReached.Total)

	_, err = s.app.SessionController.GrantException(s.ctx, session.ID, alice.ID)
	s.Require().NoError(err)

	result, err = s.app.SessionController.SetValue(s.ctx, session.ID, line, alice.ID, "60")
	s.Require().NoError(err)
	s.Nil(result.LimitReached)

	// Reset clears the exception along with the scores
	reset, err := s.app.SessionController.Reset(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Empty(reset.LimitExceptions)
	s.Equal(0.0, reset.Totals[alice.ID])
}
