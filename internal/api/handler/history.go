package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mlaroche/scoretally/internal/api/response"
	"github.com/mlaroche/scoretally/internal/model"
	"github.com/mlaroche/scoretally/internal/services/history"
)

// HistoryHandler handles recorded game endpoints
type HistoryHandler struct {
	history *history.Service
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(history *history.Service) *HistoryHandler {
	return &HistoryHandler{history: history}
}

// List handles GET /api/v1/games. A q query parameter filters by title
// or player name.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	snapshots, err := h.history.Search(r.Context(), query)
	if err != nil {
		WriteError(w, err)
		return
	}

	out := make([]response.GameSummary, len(snapshots))
	for i, sn := range snapshots {
		out[i] = response.GameSummaryFromModel(sn)
	}
	response.JSON(w, http.StatusOK, out)
}

// Get handles GET /api/v1/games/{game_id}
func (h *HistoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["game_id"])

	snapshot, err := h.history.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameRecordFromModel(snapshot))
}

// Delete handles DELETE /api/v1/games/{game_id}
func (h *HistoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["game_id"])

	if err := h.history.Delete(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// DeleteAll handles DELETE /api/v1/games
func (h *HistoryHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	if err := h.history.DeleteAll(r.Context()); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
