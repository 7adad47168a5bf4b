package history

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/mlaroche/scoretally/internal/model"
	"github.com/mlaroche/scoretally/internal/storage"
)

// Service provides access to the recorded game history
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new history service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// List returns all recorded games, most recently saved first
func (s *Service) List(ctx context.Context) ([]*model.Snapshot, error) {
	snapshots, err := s.storage.ListSnapshots(ctx)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(snapshots)
	return snapshots, nil
}

// Get retrieves one recorded game by id
func (s *Service) Get(ctx context.Context, id model.SessionID) (*model.Snapshot, error) {
	return s.storage.GetSnapshot(ctx, id)
}

// Search returns recorded games whose title or any player name contains
// the query, case-insensitively. An empty query matches everything.
func (s *Service) Search(ctx context.Context, query string) ([]*model.Snapshot, error) {
	snapshots, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return snapshots, nil
	}

	matched := make([]*model.Snapshot, 0, len(snapshots))
	for _, snapshot := range snapshots {
		if matches(snapshot, query) {
			matched = append(matched, snapshot)
		}
	}
	return matched, nil
}

// Delete removes one recorded game
func (s *Service) Delete(ctx context.Context, id model.SessionID) error {
	if err := s.storage.DeleteSnapshot(ctx, id); err != nil {
		return err
	}
	s.logger.Info("game deleted from history", slog.String("game_id", string(id)))
	return nil
}

// DeleteAll clears the entire history
func (s *Service) DeleteAll(ctx context.Context) error {
	if err := s.storage.DeleteAllSnapshots(ctx); err != nil {
		return err
	}
	s.logger.Info("game history cleared")
	return nil
}

func matches(snapshot *model.Snapshot, query string) bool {
	if strings.Contains(strings.ToLower(snapshot.Title), query) {
		return true
	}
	for _, p := range snapshot.Players {
		if strings.Contains(strings.ToLower(p.Name), query) {
			return true
		}
	}
	return false
}

func sortNewestFirst(snapshots []*model.Snapshot) {
	sort.Slice(snapshots, func(i, j int) bool {
		if snapshots[i].SavedAt.Equal(snapshots[j].SavedAt) {
			return snapshots[i].ID < snapshots[j].ID
		}
		return snapshots[i].SavedAt.After(snapshots[j].SavedAt)
	})
}
