package auth_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lparra/snake-hub-be/internal/auth"
	"github.com/lparra/snake-hub-be/internal/models"
)

type stubResolver map[string]models.User

func (r stubResolver) GetUserByID(id string) (models.User, error) {
	if user, ok := r[id]; ok {
		return user, nil
	}
	return models.User{}, fmt.Errorf("user with ID %s not found", id)
}

func resolvedUser(t *testing.T, users stubResolver, header string) (models.User, bool) {
	t.Helper()

	var got models.User
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = auth.UserFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	auth.Middleware(users)(next).ServeHTTP(httptest.NewRecorder(), req)
	return got, ok
}

func TestMiddleware(t *testing.T) {
	users := stubResolver{
		"id-1": {ID: "id-1", Username: "Ava"},
	}

	tests := []struct {
		name   string
		header string
		want   string
		ok     bool
	}{
		{name: "missing header", header: "", ok: false},
		{name: "valid bearer", header: "Bearer id-1", want: "Ava", ok: true},
		{name: "scheme is case-insensitive", header: "bEaReR id-1", want: "Ava", ok: true},
		{name: "wrong scheme", header: "Basic id-1", ok: false},
		{name: "too many tokens", header: "Bearer id-1 extra", ok: false},
		{name: "token only", header: "id-1", ok: false},
		{name: "unknown account id", header: "Bearer id-2", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, ok := resolvedUser(t, users, tt.header)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, user.Username)
			}
		})
	}
}
