package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mlaroche/scoretally/internal/api/handler"
	"github.com/mlaroche/scoretally/internal/api/middleware"
	sharedmiddleware "github.com/mlaroche/scoretally/internal/middleware"
	"github.com/mlaroche/scoretally/internal/services/history"
	"github.com/mlaroche/scoretally/internal/services/profile"
	"github.com/mlaroche/scoretally/internal/services/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	PassphraseHash    string
	ProfileService    *profile.Service
	SessionController *session.Controller
	HistoryService    *history.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	profileHandler := handler.NewProfileHandler(cfg.ProfileService)
	sessionHandler := handler.NewSessionHandler(cfg.SessionController)
	historyHandler := handler.NewHistoryHandler(cfg.HistoryService)

	authMiddleware := middleware.Auth(cfg.PassphraseHash)
	loggingMiddleware := sharedmiddleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Everything else requires the shared passphrase when one is set
	protected := api.NewRoute().Subrouter()
	protected.Use(authMiddleware)

	// Profile routes
	protected.HandleFunc("/profiles", profileHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/profiles", profileHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/profiles/{player_id}", profileHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/profiles/{player_id}", profileHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/profiles/{player_id}", profileHandler.Delete).Methods(http.MethodDelete)

	// Session routes
	protected.HandleFunc("/sessions", sessionHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/sessions", sessionHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/sessions/{session_id}", sessionHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/sessions/{session_id}", sessionHandler.Discard).Methods(http.MethodDelete)
	protected.HandleFunc("/sessions/{session_id}/lines", sessionHandler.AddLine).Methods(http.MethodPost)
	protected.HandleFunc("/sessions/{session_id}/lines/{line_id}", sessionHandler.DeleteLine).Methods(http.MethodDelete)
	protected.HandleFunc("/sessions/{session_id}/lines/{line_id}/values/{player_id}", sessionHandler.SetValue).Methods(http.MethodPut)
	protected.HandleFunc("/sessions/{session_id}/players", sessionHandler.AddPlayer).Methods(http.MethodPost)
	protected.HandleFunc("/sessions/{session_id}/players/order", sessionHandler.Reorder).Methods(http.MethodPut)
	protected.HandleFunc("/sessions/{session_id}/players/{player_id}", sessionHandler.RemovePlayer).Methods(http.MethodDelete)
	protected.HandleFunc("/sessions/{session_id}/reset", sessionHandler.Reset).Methods(http.MethodPost)
	protected.HandleFunc("/sessions/{session_id}/limit-exceptions", sessionHandler.GrantException).Methods(http.MethodPost)
	protected.HandleFunc("/sessions/{session_id}/save", sessionHandler.Save).Methods(http.MethodPost)
	protected.HandleFunc("/sessions/{session_id}/end", sessionHandler.End).Methods(http.MethodPost)

	// History routes
	protected.HandleFunc("/games", historyHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/games", historyHandler.DeleteAll).Methods(http.MethodDelete)
	protected.HandleFunc("/games/{game_id}", historyHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/games/{game_id}", historyHandler.Delete).Methods(http.MethodDelete)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
