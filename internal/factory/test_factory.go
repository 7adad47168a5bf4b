package factory

import (
	"io"
	"log/slog"
	"time"

	"github.com/mlaroche/scoretally/internal/dependencies/mocks"
	"github.com/mlaroche/scoretally/internal/services/session"
	"github.com/mlaroche/scoretally/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
	MockIDs   *mocks.MockIDs
}

// NewTestApp creates an App configured for testing with mocked
// dependencies. Session saves are synchronous so tests can assert on
// storage without waiting out the debounce.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockIDs := mocks.NewMockIDs()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	app := newWithDependencies(store, mockClock, mockIDs, session.Config{AutosaveDelay: 0}, logger)

	return &TestApp{
		App:       app,
		MockClock: mockClock,
		MockIDs:   mockIDs,
	}
}
