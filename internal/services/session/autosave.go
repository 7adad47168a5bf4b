package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mlaroche/scoretally/internal/model"
)

// autosaver debounces persistence of live sessions. Each Schedule call
// replaces any pending timer for that session, so a burst of edits
// collapses into a single write once the user pauses. Cancellation only
// ever discards a pending timer; a write already in flight is left to
// finish, and the next cycle simply writes again (last write wins,
// which is safe because writes are full-snapshot replacements).
type autosaver struct {
	delay   time.Duration
	persist func(ctx context.Context, id model.SessionID)
	logger  *slog.Logger

	mu     sync.Mutex
	timers map[model.SessionID]*time.Timer
}

func newAutosaver(delay time.Duration, persist func(ctx context.Context, id model.SessionID), logger *slog.Logger) *autosaver {
	return &autosaver{
		delay:   delay,
		persist: persist,
		logger:  logger,
		timers:  make(map[model.SessionID]*time.Timer),
	}
}

// Schedule arms (or re-arms) the debounce timer for a session
func (a *autosaver) Schedule(id model.SessionID) {
	if a.delay <= 0 {
		a.persist(context.Background(), id)
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if t, ok := a.timers[id]; ok {
		t.Stop()
	}
	a.timers[id] = time.AfterFunc(a.delay, func() {
		a.mu.Lock()
		delete(a.timers, id)
		a.mu.Unlock()

		a.persist(context.Background(), id)
	})
}

// Cancel discards any pending write for a session
func (a *autosaver) Cancel(id model.SessionID) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if t, ok := a.timers[id]; ok {
		t.Stop()
		delete(a.timers, id)
	}
}

// Close flushes every pending write immediately
func (a *autosaver) Close() {
	a.mu.Lock()
	pending := make([]model.SessionID, 0, len(a.timers))
	for id, t := range a.timers {
		t.Stop()
		pending = append(pending, id)
	}
	a.timers = make(map[model.SessionID]*time.Timer)
	a.mu.Unlock()

	for _, id := range pending {
		a.persist(context.Background(), id)
	}
}
