package session

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/mlaroche/scoretally/internal/dependencies/clock"
	"github.com/mlaroche/scoretally/internal/dependencies/identity"
	"github.com/mlaroche/scoretally/internal/ledger"
	"github.com/mlaroche/scoretally/internal/model"
	"github.com/mlaroche/scoretally/internal/services/profile"
	"github.com/mlaroche/scoretally/internal/storage"
)

// DefaultAutosaveDelay is how long the controller waits after the last
// edit before persisting a live session
const DefaultAutosaveDelay = time.Second

// Config holds configuration for the session controller
type Config struct {
	// AutosaveDelay is the debounce window for background persistence.
	// Zero or negative means persist synchronously on every mutation.
	AutosaveDelay time.Duration
}

// DefaultConfig returns default session controller configuration
func DefaultConfig() Config {
	return Config{AutosaveDelay: DefaultAutosaveDelay}
}

// Controller owns the live game sessions. The in-memory session is the
// source of truth while a game is running: mutations apply to memory
// first and are persisted by a debounced background save, so a failed
// write never corrupts or loses the player's entries. Explicit save and
// end-game writes are synchronous and report their errors.
type Controller struct {
	storage  storage.Storage
	profiles *profile.Service
	clock    clock.Clock
	ids      identity.Generator
	logger   *slog.Logger

	mu       sync.Mutex
	sessions map[model.SessionID]*model.Session

	saver *autosaver
}

// NewController creates a new session controller
func NewController(
	storage storage.Storage,
	profiles *profile.Service,
	clock clock.Clock,
	ids identity.Generator,
	cfg Config,
	logger *slog.Logger,
) *Controller {
	c := &Controller{
		storage:  storage,
		profiles: profiles,
		clock:    clock,
		ids:      ids,
		logger:   logger,
		sessions: make(map[model.SessionID]*model.Session),
	}
	c.saver = newAutosaver(cfg.AutosaveDelay, c.persistSession, logger)
	return c
}

// Close flushes pending autosaves
func (c *Controller) Close() {
	c.saver.Close()
}

// Create starts a new session for the given profiles. The profiles are
// copied into the session, so subsequent profile edits do not affect it.
func (c *Controller) Create(ctx context.Context, title string, playerIDs []model.PlayerID, goal model.Goal, limit *float64) (*model.Session, error) {
	if len(playerIDs) < 2 {
		return nil, model.ErrInsufficientPlayers
	}

	players := make([]model.Player, 0, len(playerIDs))
	seen := make(map[model.PlayerID]bool, len(playerIDs))
	for _, id := range playerIDs {
		if seen[id] {
			return nil, model.ErrPlayerInSession
		}
		seen[id] = true
		p, err := c.profiles.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		players = append(players, *p)
	}

	now := c.clock.Now()
	session := &model.Session{
		ID:        model.SessionID(c.ids.NewID()),
		Title:     strings.TrimSpace(title),
		Players:   players,
		Goal:      goal,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if limit != nil {
		l := *limit
		session.Limit = &l
	}

	if err := ledger.Init(session); err != nil {
		return nil, err
	}

	// The initial write is synchronous so a brand-new session is never
	// only in memory
	if err := c.storage.SaveSession(ctx, session); err != nil {
		c.logger.Error("failed to save new session",
			slog.String("session_id", string(session.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.mu.Lock()
	c.sessions[session.ID] = session
	c.mu.Unlock()

	c.logger.Info("session created",
		slog.String("session_id", string(session.ID)),
		slog.Int("player_count", len(players)),
		slog.String("goal", string(goal)),
	)

	return session.Clone(), nil
}

// Get returns the current state of a session, loading it from storage
// if it is not live in memory (e.g. after a restart)
func (c *Controller) Get(ctx context.Context, id model.SessionID) (*model.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	session, err := c.liveLocked(ctx, id)
	if err != nil {
		return nil, err
	}
	return session.Clone(), nil
}

// List returns all live sessions
func (c *Controller) List(ctx context.Context) ([]*model.Session, error) {
	stored, err := c.storage.ListSessions(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Live in-memory state wins over what was last persisted
	out := make([]*model.Session, 0, len(stored))
	seen := make(map[model.SessionID]bool, len(stored))
	for _, s := range stored {
		if live, ok := c.sessions[s.ID]; ok {
			out = append(out, live.Clone())
		} else {
			out = append(out, s)
		}
		seen[s.ID] = true
	}
	for id, live := range c.sessions {
		if !seen[id] {
			out = append(out, live.Clone())
		}
	}
	return out, nil
}

// SetValueResult is the outcome of a value entry
type SetValueResult struct {
	Session      *model.Session
	LimitReached *ledger.LimitReached
}

// SetValue records raw input for one cell and reports whether the
// affected player crossed the session limit
func (c *Controller) SetValue(ctx context.Context, id model.SessionID, lineID model.LineID, playerID model.PlayerID, raw string) (*SetValueResult, error) {
	var reached *ledger.LimitReached
	session, err := c.mutate(ctx, id, func(s *model.Session) error {
		if err := ledger.SetValue(s, lineID, playerID, raw); err != nil {
			return err
		}
		reached = ledger.CheckLimit(s, playerID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &SetValueResult{Session: session, LimitReached: reached}, nil
}

// DeleteLine removes a score line
func (c *Controller) DeleteLine(ctx context.Context, id model.SessionID, lineID model.LineID) (*model.Session, error) {
	return c.mutate(ctx, id, func(s *model.Session) error {
		return ledger.DeleteLine(s, lineID)
	})
}

// AddLine appends a fresh empty line
func (c *Controller) AddLine(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return c.mutate(ctx, id, func(s *model.Session) error {
		ledger.AddLine(s)
		return nil
	})
}

// AddPlayer joins a registered profile to a running session
func (c *Controller) AddPlayer(ctx context.Context, id model.SessionID, playerID model.PlayerID) (*model.Session, error) {
	player, err := c.profiles.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return c.mutate(ctx, id, func(s *model.Session) error {
		return ledger.AddPlayer(s, *player)
	})
}

// RemovePlayer drops a player from a running session
func (c *Controller) RemovePlayer(ctx context.Context, id model.SessionID, playerID model.PlayerID) (*model.Session, error) {
	return c.mutate(ctx, id, func(s *model.Session) error {
		return ledger.RemovePlayer(s, playerID)
	})
}

// Reorder changes the display order of player columns
func (c *Controller) Reorder(ctx context.Context, id model.SessionID, newOrder []model.PlayerID) (*model.Session, error) {
	return c.mutate(ctx, id, func(s *model.Session) error {
		return ledger.Reorder(s, newOrder)
	})
}

// Reset zeroes the session: lines discarded, totals cleared, players kept
func (c *Controller) Reset(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return c.mutate(ctx, id, func(s *model.Session) error {
		ledger.Reset(s)
		return nil
	})
}

// GrantException records a sticky continue-past-limit exception
func (c *Controller) GrantException(ctx context.Context, id model.SessionID, playerID model.PlayerID) (*model.Session, error) {
	return c.mutate(ctx, id, func(s *model.Session) error {
		return ledger.GrantException(s, playerID)
	})
}

// Save writes an in-progress snapshot to the history synchronously.
// The session keeps running; saving again later replaces the record.
func (c *Controller) Save(ctx context.Context, id model.SessionID, title string) (*model.Snapshot, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, model.ErrTitleRequired
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	session, err := c.liveLocked(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Title = title
	snapshot := session.Snapshot(c.clock.Now())

	if err := c.storage.SaveSnapshot(ctx, snapshot); err != nil {
		c.logger.Error("failed to save game",
			slog.String("session_id", string(id)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game saved",
		slog.String("session_id", string(id)),
		slog.String("title", title),
	)
	return snapshot, nil
}

// EndResult is the outcome of ending a game
type EndResult struct {
	Ranking  model.Ranking
	Snapshot *model.Snapshot
}

// End finishes a game: the final ranking is computed, the snapshot is
// persisted to history, and the live session is discarded. On a failed
// write the session is left running so the user can retry.
func (c *Controller) End(ctx context.Context, id model.SessionID, title string) (*EndResult, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, model.ErrTitleRequired
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	session, err := c.liveLocked(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Title = title
	ranking := ledger.Rank(session)

	snapshot := session.Snapshot(c.clock.Now())
	snapshot.Finished = true
	snapshot.Ranking = ranking

	if err := c.storage.SaveSnapshot(ctx, snapshot); err != nil {
		c.logger.Error("failed to record finished game",
			slog.String("session_id", string(id)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.saver.Cancel(id)
	delete(c.sessions, id)
	if err := c.storage.DeleteSession(ctx, id); err != nil {
		// The game is recorded; a leftover live record only lingers
		c.logger.Warn("failed to delete ended session",
			slog.String("session_id", string(id)),
			slog.String("error", err.Error()),
		)
	}

	c.logger.Info("game ended",
		slog.String("session_id", string(id)),
		slog.String("title", title),
	)
	return &EndResult{Ranking: ranking, Snapshot: snapshot}, nil
}

// Discard abandons a session without recording it
func (c *Controller) Discard(ctx context.Context, id model.SessionID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.liveLocked(ctx, id); err != nil {
		return err
	}

	c.saver.Cancel(id)
	delete(c.sessions, id)
	if err := c.storage.DeleteSession(ctx, id); err != nil {
		return err
	}

	c.logger.Info("session discarded", slog.String("session_id", string(id)))
	return nil
}

// mutate applies fn to the live session and schedules a debounced save.
// The in-memory state is mutated only if fn succeeds. The save is
// scheduled outside the lock because a zero debounce delay persists
// synchronously.
func (c *Controller) mutate(ctx context.Context, id model.SessionID, fn func(*model.Session) error) (*model.Session, error) {
	c.mu.Lock()
	session, err := c.liveLocked(ctx, id)
	if err != nil {
		c.mu.Unlock()
		return nil, err
	}

	if err := fn(session); err != nil {
		c.mu.Unlock()
		return nil, err
	}
	session.UpdatedAt = c.clock.Now()
	result := session.Clone()
	c.mu.Unlock()

	c.saver.Schedule(id)
	return result, nil
}

// liveLocked returns the live session, restoring it from storage on a
// miss. Caller holds c.mu.
func (c *Controller) liveLocked(ctx context.Context, id model.SessionID) (*model.Session, error) {
	if session, ok := c.sessions[id]; ok {
		return session, nil
	}

	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	c.sessions[id] = session
	return session, nil
}

// persistSession is the autosave callback. Failures are logged and the
// in-memory state is kept; the next edit schedules another attempt.
func (c *Controller) persistSession(ctx context.Context, id model.SessionID) {
	c.mu.Lock()
	session, ok := c.sessions[id]
	var copied *model.Session
	if ok {
		copied = session.Clone()
	}
	c.mu.Unlock()

	if copied == nil {
		return
	}

	if err := c.storage.SaveSession(ctx, copied); err != nil {
		c.logger.Error("autosave failed",
			slog.String("session_id", string(id)),
			slog.String("error", err.Error()),
		)
		return
	}

	c.logger.Debug("session autosaved", slog.String("session_id", string(id)))
}
