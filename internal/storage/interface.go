package storage

import (
	"context"

	"github.com/mlaroche/scoretally/internal/model"
)

// Storage defines the interface for data persistence.
// Writes are idempotent full-record replacements; there are no deltas.
type Storage interface {
	// Profile operations
	SaveProfile(ctx context.Context, player *model.Player) error
	GetProfile(ctx context.Context, id model.PlayerID) (*model.Player, error)
	ListProfiles(ctx context.Context) ([]*model.Player, error)
	DeleteProfile(ctx context.Context, id model.PlayerID) error

	// Live session operations
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	ListSessions(ctx context.Context) ([]*model.Session, error)
	DeleteSession(ctx context.Context, id model.SessionID) error

	// Game history operations
	SaveSnapshot(ctx context.Context, snapshot *model.Snapshot) error
	GetSnapshot(ctx context.Context, id model.SessionID) (*model.Snapshot, error)
	ListSnapshots(ctx context.Context) ([]*model.Snapshot, error)
	DeleteSnapshot(ctx context.Context, id model.SessionID) error
	DeleteAllSnapshots(ctx context.Context) error
}
