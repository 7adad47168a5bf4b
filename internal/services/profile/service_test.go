package profile

import (
	"context"
	"testing"
	"time"

	"github.com/mlaroche/scoretally/internal/dependencies/mocks"
	"github.com/mlaroche/scoretally/internal/ledger"
	"github.com/mlaroche/scoretally/internal/model"
	"github.com/mlaroche/scoretally/internal/storage/memory"
	"github.com/mlaroche/scoretally/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	ids     *mocks.MockIDs
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	logger := testutil.NopLogger()
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.ids = mocks.NewMockIDs()
	s.service = New(s.storage, s.clock, s.ids, logger)
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestCreateSucceeds() {
	s.ids.Queue("alice")

	player, err := s.service.Create(s.ctx, "Alice", "#ff0000")
	s.Require().NoError(err)

	s.Equal(model.PlayerID("alice"), player.ID)
	s.Equal("Alice", player.Name)
	s.Equal("#ff0000", player.Color)
	s.Equal(s.clock.Now(), player.CreatedAt)
}

func (s *ServiceSuite) TestCreateTrimsName() {
	player, err := s.service.Create(s.ctx, "  Alice  ", "#ff0000")
	s.Require().NoError(err)
	s.Equal("Alice", player.Name)
}

func (s *ServiceSuite) TestCreateFailsWithBlankName() {
	_, err := s.service.Create(s.ctx, "   ", "#ff0000")
	s.ErrorIs(err, model.ErrNameRequired)
}

func (s *ServiceSuite) TestCreateFailsWithInvalidColor() {
	for _, color := range []string{"", "red", "#ff000", "#gggggg", "ff0000"} {
		_, err := s.service.Create(s.ctx, "Alice", color)
		s.ErrorIs(err, model.ErrInvalidColor, "color %q", color)
	}
}

func (s *ServiceSuite) TestGetFailsForUnknownProfile() {
	_, err := s.service.Get(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrProfileNotFound)
}

func (s *ServiceSuite) TestListOrdersByCreation() {
	s.ids.Queue("alice", "bob", "carol")
	_, err := s.service.Create(s.ctx, "Alice", "#ff0000")
	s.Require().NoError(err)
	s.clock.Advance(time.Minute)
	_, err = s.service.Create(s.ctx, "Bob", "#00ff00")
	s.Require().NoError(err)
	s.clock.Advance(time.Minute)
	_, err = s.service.Create(s.ctx, "Carol", "#0000ff")
	s.Require().NoError(err)

	players, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 3)
	s.Equal("Alice", players[0].Name)
	s.Equal("Bob", players[1].Name)
	s.Equal("Carol", players[2].Name)
}

func (s *ServiceSuite) TestCount() {
	count, err := s.service.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, count)

	_, err = s.service.Create(s.ctx, "Alice", "#ff0000")
	s.Require().NoError(err)

	count, err = s.service.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *ServiceSuite) TestUpdatePreservesCreatedAt() {
	s.ids.Queue("alice")
	created, err := s.service.Create(s.ctx, "Alice", "#ff0000")
	s.Require().NoError(err)

	s.clock.Advance(time.Hour)
	updated, err := s.service.Update(s.ctx, created.ID, "Alicia", "#0000ff")
	s.Require().NoError(err)

	s.Equal("Alicia", updated.Name)
	s.Equal("#0000ff", updated.Color)
	s.Equal(created.CreatedAt, updated.CreatedAt)
}

func (s *ServiceSuite) TestUpdateFailsForUnknownProfile() {
	_, err := s.service.Update(s.ctx, "nobody", "Alice", "#ff0000")
	s.ErrorIs(err, model.ErrProfileNotFound)
}

func (s *ServiceSuite) TestDeleteSucceeds() {
	player, err := s.service.Create(s.ctx, "Alice", "#ff0000")
	s.Require().NoError(err)

	err = s.service.Delete(s.ctx, player.ID)
	s.Require().NoError(err)

	_, err = s.service.Get(s.ctx, player.ID)
	s.ErrorIs(err, model.ErrProfileNotFound)
}

func (s *ServiceSuite) TestDeleteFailsForUnknownProfile() {
	err := s.service.Delete(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrProfileNotFound)
}

func (s *ServiceSuite) TestDeleteFailsWhileProfileInLiveSession() {
	alice, err := s.service.Create(s.ctx, "Alice", "#ff0000")
	s.Require().NoError(err)
	bob, err := s.service.Create(s.ctx, "Bob", "#00ff00")
	s.Require().NoError(err)

	session := &model.Session{
		ID:      "session-1",
		Players: []model.Player{*alice, *bob},
		Goal:    model.GoalHighest,
	}
	s.Require().NoError(ledger.Init(session))
	s.Require().NoError(s.storage.SaveSession(s.ctx, session))

	err = s.service.Delete(s.ctx, alice.ID)
	s.ErrorIs(err, model.ErrProfileInUse)

	// Deletable again once the session is gone
	s.Require().NoError(s.storage.DeleteSession(s.ctx, session.ID))
	s.NoError(s.service.Delete(s.ctx, alice.ID))
}
