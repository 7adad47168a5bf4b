package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mlaroche/scoretally/internal/dependencies/clock"
	"github.com/mlaroche/scoretally/internal/dependencies/identity"
	"github.com/mlaroche/scoretally/internal/services/history"
	"github.com/mlaroche/scoretally/internal/services/profile"
	"github.com/mlaroche/scoretally/internal/services/session"
	"github.com/mlaroche/scoretally/internal/storage"
	"github.com/mlaroche/scoretally/internal/storage/memory"
	redisstorage "github.com/mlaroche/scoretally/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock
	IDs   identity.Generator

	// Services
	ProfileService    *profile.Service
	SessionController *session.Controller
	HistoryService    *history.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SessionConfig holds session controller settings (optional)
	// If zero value, defaults to session.DefaultConfig()
	SessionConfig session.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	sessionCfg := cfg.SessionConfig
	if sessionCfg.AutosaveDelay == 0 {
		sessionCfg = session.DefaultConfig()
	}

	return newWithDependencies(store, clock.New(), identity.New(), sessionCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, ids identity.Generator, sessionCfg session.Config, logger *slog.Logger) *App {
	profileService := profile.New(store, clk, ids, logger)
	sessionController := session.NewController(store, profileService, clk, ids, sessionCfg, logger)
	historyService := history.New(store, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		IDs:               ids,
		ProfileService:    profileService,
		SessionController: sessionController,
		HistoryService:    historyService,
	}
}

// Close flushes pending session saves and releases storage resources
func (a *App) Close() error {
	a.SessionController.Close()
	if closer, ok := a.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
