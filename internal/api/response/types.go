// Package response defines the wire envelopes returned by the API.
//
// Every endpoint shares the {success, data?/user?, error?} envelope shape,
// but each endpoint's success payload is its own explicit type rather
// than one untyped field.
package response

import "github.com/lparra/snake-hub-be/internal/models"

// Auth is the envelope for signup, login, and profile-update responses.
type Auth struct {
	Success bool         `json:"success"`
	User    *models.User `json:"user,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// Me is the envelope for the current-account lookup. Data is null when no
// account was resolved.
type Me struct {
	Success bool         `json:"success"`
	Data    *models.User `json:"data"`
}

// Status is the bare acknowledgment envelope (logout).
type Status struct {
	Success bool `json:"success"`
}

// LeaderboardList is the envelope for leaderboard queries.
type LeaderboardList struct {
	Success bool                      `json:"success"`
	Data    []models.LeaderboardEntry `json:"data"`
}

// LeaderboardSubmit is the envelope for score submissions.
type LeaderboardSubmit struct {
	Success bool                     `json:"success"`
	Data    *models.LeaderboardEntry `json:"data,omitempty"`
	Error   string                   `json:"error,omitempty"`
}

// PlayerList is the envelope for the active-player roster.
type PlayerList struct {
	Success bool                  `json:"success"`
	Data    []models.ActivePlayer `json:"data"`
}

// Player is the envelope for a single active-player lookup. Data is null
// when no such player is active.
type Player struct {
	Success bool                 `json:"success"`
	Data    *models.ActivePlayer `json:"data"`
}

// Banner is the root endpoint's payload.
type Banner struct {
	Message string `json:"message"`
}
