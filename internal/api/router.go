package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/lparra/snake-hub-be/internal/api/handlers"
	"github.com/lparra/snake-hub-be/internal/api/response"
	"github.com/lparra/snake-hub-be/internal/auth"
	"github.com/lparra/snake-hub-be/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(
	userService services.UserServiceProvider,
	leaderboardService services.LeaderboardServiceProvider,
	playerService services.PlayerServiceProvider,
	corsOrigin string,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS stays wide open so any frontend origin can reach the API
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{corsOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)
	playerHandler := handlers.NewPlayerHandler(playerService)

	bearer := auth.Middleware(userService)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		response.Write(w, http.StatusOK, response.Banner{Message: "Snake Social Hub API is running"})
	})

	r.Route("/auth", func(r chi.Router) {
		r.Use(bearer)
		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)
		r.Put("/profile", authHandler.UpdateProfile)
		r.Get("/me", authHandler.Me)
		r.Post("/logout", authHandler.Logout)
	})

	r.Route("/leaderboard", func(r chi.Router) {
		r.Use(bearer)
		r.Get("/", leaderboardHandler.List)
		r.Post("/", leaderboardHandler.Submit)
	})

	r.Route("/players", func(r chi.Router) {
		r.Get("/", playerHandler.List)
		r.Get("/{id}", playerHandler.Get)
	})

	return r
}
