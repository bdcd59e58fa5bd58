package users

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arenadesk/arenadesk/go/internal/apierror"
	"github.com/arenadesk/arenadesk/go/internal/models"
)

func newTestApp() *App {
	return NewApp(NewMemoryRepository(), NewTokenProvider("test-secret", time.Hour))
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	app := newTestApp()

	user, token, err := app.Register(ctx, "alice", "alice@example.com", "correct horse battery")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "alice", user.Username)
	require.Equal(t, models.RoleUser, user.Role)
	require.NotEmpty(t, token)

	loggedIn, loginToken, err := app.Login(ctx, "alice", "correct horse battery")
	require.NoError(t, err)
	require.Equal(t, user.ID, loggedIn.ID)
	require.NotEmpty(t, loginToken)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	app := newTestApp()

	_, _, err := app.Register(ctx, "alice", "alice@example.com", "correct horse battery")
	require.NoError(t, err)

	_, _, err = app.Register(ctx, "alice", "other@example.com", "password123")
	require.True(t, apierror.IsKind(err, apierror.KindValidation))
	require.Contains(t, err.Error(), "username already taken")

	_, _, err = app.Register(ctx, "bob", "alice@example.com", "password123")
	require.True(t, apierror.IsKind(err, apierror.KindValidation))
	require.Contains(t, err.Error(), "email already registered")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	app := newTestApp()

	_, _, err := app.Register(ctx, "alice", "alice@example.com", "correct horse battery")
	require.NoError(t, err)

	_, _, err = app.Login(ctx, "alice", "wrong password")
	require.True(t, apierror.IsKind(err, apierror.KindUnauthorized))

	_, _, unknownErr := app.Login(ctx, "nobody", "wrong password")
	require.True(t, apierror.IsKind(unknownErr, apierror.KindUnauthorized))

	// Unknown user and bad password are indistinguishable to the caller.
	require.Equal(t, err.Error(), unknownErr.Error())
}

func TestTokenRoundTrip(t *testing.T) {
	provider := NewTokenProvider("test-secret", time.Hour)
	user := models.User{ID: "u1", Username: "alice", Email: "alice@example.com", Role: models.RoleAdmin}

	token, err := provider.GenerateToken(user)
	require.NoError(t, err)

	got, err := provider.ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, user, *got)
}

func TestTokenRejectedByOtherSecret(t *testing.T) {
	token, err := NewTokenProvider("secret-a", time.Hour).GenerateToken(models.User{ID: "u1"})
	require.NoError(t, err)

	_, err = NewTokenProvider("secret-b", time.Hour).ValidateToken(token)
	require.True(t, apierror.IsKind(err, apierror.KindUnauthorized))
}

func TestExpiredTokenRejected(t *testing.T) {
	provider := NewTokenProvider("test-secret", -time.Minute)
	token, err := provider.GenerateToken(models.User{ID: "u1"})
	require.NoError(t, err)

	_, err = provider.ValidateToken(token)
	require.True(t, apierror.IsKind(err, apierror.KindUnauthorized))
}
