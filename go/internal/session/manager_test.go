package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arenadesk/arenadesk/go/clients/dashapi"
	"github.com/arenadesk/arenadesk/go/internal/models"
)

type fakeAuth struct {
	resp *dashapi.AuthResponse
	err  error
}

func (f *fakeAuth) Login(_ context.Context, _ dashapi.Credentials) (*dashapi.AuthResponse, error) {
	return f.resp, f.err
}

func (f *fakeAuth) Register(_ context.Context, _ dashapi.Registration) (*dashapi.AuthResponse, error) {
	return f.resp, f.err
}

func TestRestoreSettlesInitialState(t *testing.T) {
	m := NewManager(&fakeAuth{}, NewMemoryStore())
	require.Equal(t, StateLoading, m.State())
	require.Equal(t, StateUnauthenticated, m.Restore())

	seeded := NewMemoryStore()
	require.NoError(t, seeded.Set(TokenKey, "persisted-token"))
	m = NewManager(&fakeAuth{}, seeded)
	require.Equal(t, StateAuthenticated, m.Restore())
	require.Equal(t, "persisted-token", m.Token())
}

func TestLoginPersistsIdentity(t *testing.T) {
	auth := &fakeAuth{resp: &dashapi.AuthResponse{
		User:  models.User{ID: "u1", Username: "alice", Email: "alice@example.com", Role: models.RoleUser},
		Token: "server-token",
	}}
	m := NewManager(auth, NewMemoryStore())
	m.Restore()

	resp, err := m.Login(context.Background(), dashapi.Credentials{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	require.Equal(t, "server-token", resp.Token)
	require.Equal(t, StateAuthenticated, m.State())
	require.True(t, m.IsAuthenticated())
	require.Equal(t, "server-token", m.Token())

	user := m.CurrentUser()
	require.NotNil(t, user)
	require.Equal(t, "alice", user.Username)
}

func TestLoginFailureLeavesSessionUntouched(t *testing.T) {
	m := NewManager(&fakeAuth{err: context.DeadlineExceeded}, NewMemoryStore())
	m.Restore()

	_, err := m.Login(context.Background(), dashapi.Credentials{Username: "alice", Password: "wrong"})
	require.Error(t, err)
	require.Equal(t, StateUnauthenticated, m.State())
	require.False(t, m.IsAuthenticated())
	require.Nil(t, m.CurrentUser())
}

func TestSimulateLoginFillsDefaults(t *testing.T) {
	m := NewManager(&fakeAuth{}, NewMemoryStore())
	m.Restore()

	resp := m.SimulateLogin(models.User{})
	require.Equal(t, SimulatedToken, resp.Token)
	require.NotEmpty(t, resp.User.ID)
	require.Equal(t, "demo_user", resp.User.Username)
	require.Equal(t, "demo@example.com", resp.User.Email)
	require.Equal(t, models.RoleUser, resp.User.Role)
	require.True(t, m.IsAuthenticated())
}

func TestSimulateLoginKeepsProvidedProfile(t *testing.T) {
	m := NewManager(&fakeAuth{}, NewMemoryStore())
	m.Restore()

	resp := m.SimulateLogin(models.User{Username: "casey", Role: models.RoleAdmin})
	require.Equal(t, "casey", resp.User.Username)
	require.Equal(t, models.RoleAdmin, resp.User.Role)

	user := m.CurrentUser()
	require.NotNil(t, user)
	require.Equal(t, "casey", user.Username)
}

func TestLogoutClearsSession(t *testing.T) {
	m := NewManager(&fakeAuth{}, NewMemoryStore())
	m.Restore()
	m.SimulateLogin(models.User{Username: "casey"})

	m.Logout()
	require.Equal(t, StateUnauthenticated, m.State())
	require.False(t, m.IsAuthenticated())
	require.Empty(t, m.Token())
	require.Nil(t, m.CurrentUser())
}

func TestFileStoreSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	m := NewManager(&fakeAuth{}, store)
	m.Restore()
	m.SimulateLogin(models.User{Username: "casey", Email: "casey@example.com"})

	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	restored := NewManager(&fakeAuth{}, reopened)
	require.Equal(t, StateAuthenticated, restored.Restore())
	require.Equal(t, SimulatedToken, restored.Token())

	user := restored.CurrentUser()
	require.NotNil(t, user)
	require.Equal(t, "casey", user.Username)
	require.Equal(t, "casey@example.com", user.Email)
}
