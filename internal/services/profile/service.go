package profile

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/mlaroche/scoretally/internal/dependencies/clock"
	"github.com/mlaroche/scoretally/internal/dependencies/identity"
	"github.com/mlaroche/scoretally/internal/model"
	"github.com/mlaroche/scoretally/internal/storage"
)

// Service manages player profiles. Profiles are a read source for
// sessions: a session copies the selected profiles at start, so later
// edits here never touch running or recorded games.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	ids     identity.Generator
	logger  *slog.Logger
}

// New creates a new profile service
func New(storage storage.Storage, clock clock.Clock, ids identity.Generator, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		ids:     ids,
		logger:  logger,
	}
}

// Create registers a new profile
func (s *Service) Create(ctx context.Context, name, color string) (*model.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrNameRequired
	}
	if !model.ValidColor(color) {
		return nil, model.ErrInvalidColor
	}

	player := &model.Player{
		ID:        model.PlayerID(s.ids.NewID()),
		Name:      name,
		Color:     color,
		CreatedAt: s.clock.Now(),
	}

	if err := s.storage.SaveProfile(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("profile created",
		slog.String("player_id", string(player.ID)),
		slog.String("name", player.Name),
	)

	return player, nil
}

// Get retrieves a profile by id
func (s *Service) Get(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return s.storage.GetProfile(ctx, id)
}

// List returns all profiles ordered by creation time
func (s *Service) List(ctx context.Context) ([]*model.Player, error) {
	players, err := s.storage.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(players, func(i, j int) bool {
		if players[i].CreatedAt.Equal(players[j].CreatedAt) {
			return players[i].ID < players[j].ID
		}
		return players[i].CreatedAt.Before(players[j].CreatedAt)
	})
	return players, nil
}

// Count returns the number of registered profiles
func (s *Service) Count(ctx context.Context) (int, error) {
	players, err := s.storage.ListProfiles(ctx)
	if err != nil {
		return 0, err
	}
	return len(players), nil
}

// Update renames and/or recolors an existing profile. The creation
// timestamp is preserved.
func (s *Service) Update(ctx context.Context, id model.PlayerID, name, color string) (*model.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrNameRequired
	}
	if !model.ValidColor(color) {
		return nil, model.ErrInvalidColor
	}

	player, err := s.storage.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	player.Name = name
	player.Color = color

	if err := s.storage.SaveProfile(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

// Delete removes a profile. A profile that is part of a live session is
// refused; finished games keep their own copies and are unaffected.
func (s *Service) Delete(ctx context.Context, id model.PlayerID) error {
	if _, err := s.storage.GetProfile(ctx, id); err != nil {
		return err
	}

	sessions, err := s.storage.ListSessions(ctx)
	if err != nil {
		return err
	}
	for _, session := range sessions {
		if session.HasPlayer(id) {
			return model.ErrProfileInUse
		}
	}

	if err := s.storage.DeleteProfile(ctx, id); err != nil {
		return err
	}

	s.logger.Info("profile deleted", slog.String("player_id", string(id)))
	return nil
}
