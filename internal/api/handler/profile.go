package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mlaroche/scoretally/internal/api/request"
	"github.com/mlaroche/scoretally/internal/api/response"
	"github.com/mlaroche/scoretally/internal/model"
	"github.com/mlaroche/scoretally/internal/services/profile"
)

// ProfileHandler handles player profile endpoints
type ProfileHandler struct {
	profiles *profile.Service
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profiles *profile.Service) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// Create handles POST /api/v1/profiles
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	player, err := h.profiles.Create(r.Context(), req.Name, req.Color)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(player))
}

// List handles GET /api/v1/profiles
func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.profiles.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	out := response.PlayerList{
		Players: make([]response.Player, len(players)),
		Count:   len(players),
	}
	for i, p := range players {
		out.Players[i] = response.PlayerFromModel(p)
	}
	response.JSON(w, http.StatusOK, out)
}

// Get handles GET /api/v1/profiles/{player_id}
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["player_id"])

	player, err := h.profiles.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Update handles PUT /api/v1/profiles/{player_id}
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["player_id"])

	var req request.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	player, err := h.profiles.Update(r.Context(), id, req.Name, req.Color)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Delete handles DELETE /api/v1/profiles/{player_id}
func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["player_id"])

	if err := h.profiles.Delete(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
