package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/lparra/snake-hub-be/internal/models"
)

// UserResolver looks an account up by its ID.
type UserResolver interface {
	GetUserByID(id string) (models.User, error)
}

// contextKey is the private type for request-context values set here.
type contextKey string

const userContextKey = contextKey("currentUser")

// Middleware resolves the Authorization header into an account and, when
// successful, stores it in the request context. Resolution is optional: a
// missing, malformed, or unknown credential leaves the request
// unauthenticated rather than failing it.
//
// The credential is the raw account ID presented as a bearer token, with
// no signing, expiry, or revocation. That scheme is preserved for wire
// compatibility; a production deployment needs verified credentials and
// signed, expiring session tokens instead.
func Middleware(users UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user, ok := resolve(users, r.Header.Get("Authorization")); ok {
				ctx := context.WithValue(r.Context(), userContextKey, user)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// resolve parses a "<scheme> <value>" credential. The scheme must be
// "bearer" (case-insensitive) and the header must split into exactly two
// tokens; anything else resolves to no user.
func resolve(users UserResolver, header string) (models.User, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return models.User{}, false
	}
	user, err := users.GetUserByID(parts[1])
	if err != nil {
		return models.User{}, false
	}
	return user, true
}

// UserFromContext returns the account resolved by Middleware, if any.
func UserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(userContextKey).(models.User)
	return user, ok
}
