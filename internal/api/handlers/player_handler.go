package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lparra/snake-hub-be/internal/api/response"
	"github.com/lparra/snake-hub-be/internal/services"
)

// PlayerHandler handles HTTP requests for the active-player roster.
type PlayerHandler struct {
	service services.PlayerServiceProvider
}

// NewPlayerHandler creates a new PlayerHandler.
func NewPlayerHandler(service services.PlayerServiceProvider) *PlayerHandler {
	return &PlayerHandler{service: service}
}

// List returns all currently-active players.
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	players := h.service.ListActivePlayers()
	response.Write(w, http.StatusOK, response.PlayerList{Success: true, Data: players})
}

// Get returns one active player by ID, or null if they are not playing.
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if player, ok := h.service.GetActivePlayer(id); ok {
		response.Write(w, http.StatusOK, response.Player{Success: true, Data: &player})
		return
	}
	response.Write(w, http.StatusOK, response.Player{Success: true, Data: nil})
}
