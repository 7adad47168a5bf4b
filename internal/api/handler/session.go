package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mlaroche/scoretally/internal/api/request"
	"github.com/mlaroche/scoretally/internal/api/response"
	"github.com/mlaroche/scoretally/internal/model"
	"github.com/mlaroche/scoretally/internal/services/session"
)

// SessionHandler handles live session endpoints
type SessionHandler struct {
	sessions *session.Controller
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions *session.Controller) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	players := make([]model.PlayerID, len(req.Players))
	for i, id := range req.Players {
		players[i] = model.PlayerID(id)
	}

	s, err := h.sessions.Create(r.Context(), req.Title, players, model.Goal(req.Goal), req.Limit)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SessionFromModel(s))
}

// List handles GET /api/v1/sessions
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.sessions.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	out := make([]response.Session, len(sessions))
	for i, s := range sessions {
		out[i] = response.SessionFromModel(s)
	}
	response.JSON(w, http.StatusOK, out)
}

// Get handles GET /api/v1/sessions/{session_id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["session_id"])

	s, err := h.sessions.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(s))
}

// SetValue handles PUT /api/v1/sessions/{session_id}/lines/{line_id}/values/{player_id}
func (h *SessionHandler) SetValue(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := model.SessionID(vars["session_id"])
	lineID := model.LineID(vars["line_id"])
	playerID := model.PlayerID(vars["player_id"])

	var req request.SetValueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	result, err := h.sessions.SetValue(r.Context(), id, lineID, playerID, req.Value)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SetValueResponseFromResult(result.Session, result.LimitReached))
}

// DeleteLine handles DELETE /api/v1/sessions/{session_id}/lines/{line_id}
func (h *SessionHandler) DeleteLine(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := model.SessionID(vars["session_id"])
	lineID := model.LineID(vars["line_id"])

	s, err := h.sessions.DeleteLine(r.Context(), id, lineID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(s))
}

// AddLine handles POST /api/v1/sessions/{session_id}/lines
func (h *SessionHandler) AddLine(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["session_id"])

	s, err := h.sessions.AddLine(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(s))
}

// AddPlayer handles POST /api/v1/sessions/{session_id}/players
func (h *SessionHandler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["session_id"])

	var req request.AddPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	s, err := h.sessions.AddPlayer(r.Context(), id, model.PlayerID(req.PlayerID))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(s))
}

// RemovePlayer handles DELETE /api/v1/sessions/{session_id}/players/{player_id}
func (h *SessionHandler) RemovePlayer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := model.SessionID(vars["session_id"])
	playerID := model.PlayerID(vars["player_id"])

	s, err := h.sessions.RemovePlayer(r.Context(), id, playerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(s))
}

// Reorder handles PUT /api/v1/sessions/{session_id}/players/order
func (h *SessionHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["session_id"])

	var req request.ReorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	order := make([]model.PlayerID, len(req.Order))
	for i, pid := range req.Order {
		order[i] = model.PlayerID(pid)
	}

	s, err := h.sessions.Reorder(r.Context(), id, order)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(s))
}

// Reset handles POST /api/v1/sessions/{session_id}/reset
func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["session_id"])

	s, err := h.sessions.Reset(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(s))
}

// GrantException handles POST /api/v1/sessions/{session_id}/limit-exceptions
func (h *SessionHandler) GrantException(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["session_id"])

	var req request.LimitExceptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	s, err := h.sessions.GrantException(r.Context(), id, model.PlayerID(req.PlayerID))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(s))
}

// Save handles POST /api/v1/sessions/{session_id}/save
func (h *SessionHandler) Save(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["session_id"])

	var req request.SaveGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	snapshot, err := h.sessions.Save(r.Context(), id, req.Title)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameRecordFromModel(snapshot))
}

// End handles POST /api/v1/sessions/{session_id}/end
func (h *SessionHandler) End(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["session_id"])

	var req request.EndGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	result, err := h.sessions.End(r.Context(), id, req.Title)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.EndGameResponse{
		Ranking: response.RankingFromModel(result.Ranking),
		Game:    response.GameRecordFromModel(result.Snapshot),
	})
}

// Discard handles DELETE /api/v1/sessions/{session_id}
func (h *SessionHandler) Discard(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["session_id"])

	if err := h.sessions.Discard(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
