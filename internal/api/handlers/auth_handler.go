package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"

	"github.com/lparra/snake-hub-be/internal/api/response"
	"github.com/lparra/snake-hub-be/internal/auth"
	"github.com/lparra/snake-hub-be/internal/services"
	"github.com/rs/zerolog/log"
)

const minPasswordLength = 6

// AuthHandler handles HTTP requests for accounts and sessions.
type AuthHandler struct {
	service services.UserServiceProvider
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.UserServiceProvider) *AuthHandler {
	return &AuthHandler{service: service}
}

// SignupPayload defines the structure for signup requests.
type SignupPayload struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginPayload defines the structure for login requests.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup handles new account registration.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var payload SignupPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		response.Write(w, http.StatusBadRequest, response.Auth{Success: false, Error: "Invalid request body"})
		return
	}

	if _, err := mail.ParseAddress(payload.Email); err != nil {
		response.Write(w, http.StatusOK, response.Auth{Success: false, Error: "Invalid email address"})
		return
	}
	// Boundary check only; the password is never stored or verified.
	if len(payload.Password) < minPasswordLength {
		response.Write(w, http.StatusOK, response.Auth{Success: false, Error: "Password must be at least 6 characters"})
		return
	}

	user, err := h.service.Signup(payload.Username, payload.Email)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			response.Write(w, http.StatusOK, response.Auth{Success: false, Error: "Email already exists"})
		case errors.Is(err, services.ErrUsernameTaken):
			response.Write(w, http.StatusOK, response.Auth{Success: false, Error: "Username already taken"})
		default:
			log.Error().Err(err).Str("email", payload.Email).Msg("Failed to create account")
			response.Write(w, http.StatusInternalServerError, response.Auth{Success: false, Error: "Failed to create account"})
		}
		return
	}

	response.Write(w, http.StatusOK, response.Auth{Success: true, User: &user})
}

// Login handles authentication requests. Lookup is by email only: no
// stored credential exists to verify the password against.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		response.Write(w, http.StatusBadRequest, response.Auth{Success: false, Error: "Invalid request body"})
		return
	}

	if len(payload.Password) < minPasswordLength {
		response.Write(w, http.StatusOK, response.Auth{Success: false, Error: "Password must be at least 6 characters"})
		return
	}

	user, err := h.service.Login(payload.Email)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.Write(w, http.StatusOK, response.Auth{Success: false, Error: "Invalid email or password"})
			return
		}
		log.Error().Err(err).Str("email", payload.Email).Msg("Failed to look up account")
		response.Write(w, http.StatusInternalServerError, response.Auth{Success: false, Error: "Failed to log in"})
		return
	}

	response.Write(w, http.StatusOK, response.Auth{Success: true, User: &user})
}

// UpdateProfile overwrites the authenticated account's skin.
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		response.Write(w, http.StatusOK, response.Auth{Success: false, Error: "Not authenticated"})
		return
	}

	var payload struct {
		Skin string `json:"skin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		response.Write(w, http.StatusBadRequest, response.Auth{Success: false, Error: "Invalid request body"})
		return
	}

	updated, err := h.service.UpdateSkin(user.ID, payload.Skin)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to update skin")
		response.Write(w, http.StatusInternalServerError, response.Auth{Success: false, Error: "Failed to update profile"})
		return
	}

	response.Write(w, http.StatusOK, response.Auth{Success: true, User: &updated})
}

// Me returns the account the bearer credential resolved to, or null.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	if user, ok := auth.UserFromContext(r.Context()); ok {
		response.Write(w, http.StatusOK, response.Me{Success: true, Data: &user})
		return
	}
	response.Write(w, http.StatusOK, response.Me{Success: true, Data: nil})
}

// Logout acknowledges the request. There is no server-side session state
// to destroy.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	response.Write(w, http.StatusOK, response.Status{Success: true})
}
