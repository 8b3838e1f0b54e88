package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lparra/snake-hub-be/internal/api/response"
	"github.com/lparra/snake-hub-be/internal/auth"
	"github.com/lparra/snake-hub-be/internal/models"
	"github.com/lparra/snake-hub-be/internal/services"
	"github.com/rs/zerolog/log"
)

// LeaderboardHandler handles HTTP requests for the score ledger.
type LeaderboardHandler struct {
	service services.LeaderboardServiceProvider
}

// NewLeaderboardHandler creates a new LeaderboardHandler.
func NewLeaderboardHandler(service services.LeaderboardServiceProvider) *LeaderboardHandler {
	return &LeaderboardHandler{service: service}
}

// SubmitScorePayload defines the structure for score submissions.
type SubmitScorePayload struct {
	Score int             `json:"score"`
	Mode  models.GameMode `json:"mode"`
}

// List returns entries matching the optional mode and username query
// filters, ordered by score descending. A filter that matches nothing
// yields an empty list, not an error.
func (h *LeaderboardHandler) List(w http.ResponseWriter, r *http.Request) {
	mode := r.URL.Query().Get("mode")
	username := r.URL.Query().Get("username")

	entries, err := h.service.List(mode, username)
	if err != nil {
		log.Error().Err(err).Msg("Failed to query leaderboard")
		response.Write(w, http.StatusInternalServerError, response.LeaderboardList{Success: false, Data: []models.LeaderboardEntry{}})
		return
	}

	response.Write(w, http.StatusOK, response.LeaderboardList{Success: true, Data: entries})
}

// Submit appends one entry for the authenticated account.
func (h *LeaderboardHandler) Submit(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		response.Write(w, http.StatusOK, response.LeaderboardSubmit{Success: false, Error: "Must be logged in to submit score"})
		return
	}

	var payload SubmitScorePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		response.Write(w, http.StatusBadRequest, response.LeaderboardSubmit{Success: false, Error: "Invalid request body"})
		return
	}

	entry, err := h.service.Submit(user.Username, payload.Score, payload.Mode)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidGameMode):
			response.Write(w, http.StatusOK, response.LeaderboardSubmit{Success: false, Error: "Invalid game mode"})
		case errors.Is(err, services.ErrNegativeScore):
			response.Write(w, http.StatusOK, response.LeaderboardSubmit{Success: false, Error: "Score must be non-negative"})
		default:
			log.Error().Err(err).Str("username", user.Username).Msg("Failed to submit score")
			response.Write(w, http.StatusInternalServerError, response.LeaderboardSubmit{Success: false, Error: "Failed to submit score"})
		}
		return
	}

	response.Write(w, http.StatusOK, response.LeaderboardSubmit{Success: true, Data: &entry})
}
