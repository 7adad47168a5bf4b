package memory

import (
	"context"
	"sync"

	"github.com/mlaroche/scoretally/internal/model"
	"github.com/mlaroche/scoretally/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Records are stored as deep copies so callers cannot mutate them
// behind the store's back.
type Storage struct {
	mu sync.RWMutex

	profiles  map[model.PlayerID]*model.Player
	sessions  map[model.SessionID]*model.Session
	snapshots map[model.SessionID]*model.Snapshot
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		profiles:  make(map[model.PlayerID]*model.Player),
		sessions:  make(map[model.SessionID]*model.Session),
		snapshots: make(map[model.SessionID]*model.Snapshot),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Profile operations

func (s *Storage) SaveProfile(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *player
	s.profiles[player.ID] = &copied
	return nil
}

func (s *Storage) GetProfile(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.profiles[id]
	if !ok {
		return nil, model.ErrProfileNotFound
	}
	copied := *player
	return &copied, nil
}

func (s *Storage) ListProfiles(ctx context.Context) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]*model.Player, 0, len(s.profiles))
	for _, p := range s.profiles {
		copied := *p
		players = append(players, &copied)
	}
	return players, nil
}

func (s *Storage) DeleteProfile(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.profiles, id)
	return nil
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session.Clone()
	return nil
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return session.Clone(), nil
}

func (s *Storage) ListSessions(ctx context.Context) ([]*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sessions := make([]*model.Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		sessions = append(sessions, session.Clone())
	}
	return sessions, nil
}

func (s *Storage) DeleteSession(ctx context.Context, id model.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Snapshot operations

func (s *Storage) SaveSnapshot(ctx context.Context, snapshot *model.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[snapshot.ID] = cloneSnapshot(snapshot)
	return nil
}

func (s *Storage) GetSnapshot(ctx context.Context, id model.SessionID) (*model.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot, ok := s.snapshots[id]
	if !ok {
		return nil, model.ErrSnapshotNotFound
	}
	return cloneSnapshot(snapshot), nil
}

func (s *Storage) ListSnapshots(ctx context.Context) ([]*model.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshots := make([]*model.Snapshot, 0, len(s.snapshots))
	for _, snapshot := range s.snapshots {
		snapshots = append(snapshots, cloneSnapshot(snapshot))
	}
	return snapshots, nil
}

func (s *Storage) DeleteSnapshot(ctx context.Context, id model.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.snapshots[id]; !ok {
		return model.ErrSnapshotNotFound
	}
	delete(s.snapshots, id)
	return nil
}

func (s *Storage) DeleteAllSnapshots(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots = make(map[model.SessionID]*model.Snapshot)
	return nil
}

func cloneSnapshot(sn *model.Snapshot) *model.Snapshot {
	copied := *sn
	copied.Players = append([]model.Player(nil), sn.Players...)
	copied.LineOrder = append([]model.LineID(nil), sn.LineOrder...)
	copied.Lines = make(map[model.LineID]*model.ScoreLine, len(sn.Lines))
	for id, l := range sn.Lines {
		copied.Lines[id] = l.Clone()
	}
	copied.Totals = make(map[model.PlayerID]float64, len(sn.Totals))
	for id, t := range sn.Totals {
		copied.Totals[id] = t
	}
	copied.Ranking = append(model.Ranking(nil), sn.Ranking...)
	if sn.Limit != nil {
		limit := *sn.Limit
		copied.Limit = &limit
	}
	return &copied
}
