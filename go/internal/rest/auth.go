package rest

import (
	"context"
	"net/http"
	"strings"

	"github.com/arenadesk/arenadesk/go/internal/apierror"
	"github.com/arenadesk/arenadesk/go/internal/models"
)

// TokenValidator checks a bearer token and returns the user it was issued
// for.
type TokenValidator interface {
	ValidateToken(token string) (*models.User, error)
}

type userContextKey struct{}

// WithUser returns a context carrying the authenticated user.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// UserFrom returns the user RequireAuth stored on the context, or nil when
// the request did not pass through it.
func UserFrom(ctx context.Context) *models.User {
	user, _ := ctx.Value(userContextKey{}).(*models.User)
	return user
}

// RequireAuth rejects requests without a valid bearer token and makes the
// token's user available to downstream handlers via UserFrom.
func RequireAuth(tokens TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				Error(w, apierror.New(apierror.KindUnauthorized, "missing bearer token"))
				return
			}
			user, err := tokens.ValidateToken(token)
			if err != nil {
				Error(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}
