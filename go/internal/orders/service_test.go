package orders

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/arenadesk/arenadesk/go/internal/models"
	"github.com/arenadesk/arenadesk/go/internal/rest"
	"github.com/arenadesk/arenadesk/go/internal/users"
)

func newProtectedRouter(t *testing.T, tokens *users.TokenProvider) http.Handler {
	t.Helper()
	app := NewApp(NewMemoryRepository())
	for _, userID := range []string{"u1", "u1", "u2"} {
		_, err := app.CreateOrder(context.Background(), models.Order{
			UserID:       userID,
			TournamentID: "t1",
			Quantity:     1,
		})
		require.NoError(t, err)
	}

	router := chi.NewRouter()
	router.Group(func(r chi.Router) {
		r.Use(rest.RequireAuth(tokens))
		NewService(app).Routes(r)
	})
	return router
}

func bearerFor(t *testing.T, tokens *users.TokenProvider, user models.User) string {
	t.Helper()
	token, err := tokens.GenerateToken(user)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestOrderRoutesRequireToken(t *testing.T) {
	tokens := users.NewTokenProvider("test-secret", time.Hour)
	router := newProtectedRouter(t, tokens)

	tests := []struct {
		name       string
		auth       string
		wantStatus int
		wantOrders int
	}{
		{
			name:       "missing token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "garbage token",
			auth:       "Bearer not-a-token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "own history",
			auth:       bearerFor(t, tokens, models.User{ID: "u1", Role: models.RoleUser}),
			wantStatus: http.StatusOK,
			wantOrders: 2,
		},
		{
			name:       "someone else's history",
			auth:       bearerFor(t, tokens, models.User{ID: "u2", Role: models.RoleUser}),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "admin reads any history",
			auth:       bearerFor(t, tokens, models.User{ID: "admin-1", Role: models.RoleAdmin}),
			wantStatus: http.StatusOK,
			wantOrders: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/users/u1/orders", nil)
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}
			var orders []models.Order
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&orders))
			require.Len(t, orders, tt.wantOrders)
		})
	}
}

func TestExpiredTokenRejectedByOrderRoutes(t *testing.T) {
	expired := users.NewTokenProvider("test-secret", -time.Minute)
	live := users.NewTokenProvider("test-secret", time.Hour)
	router := newProtectedRouter(t, live)

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set("Authorization", bearerFor(t, expired, models.User{ID: "u1"}))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
