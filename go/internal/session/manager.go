// Package session tracks the identity currently signed in to the dashboard
// and mirrors it into a persisted store so a restart does not force a new
// login.
package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/arenadesk/arenadesk/go/clients/dashapi"
	"github.com/arenadesk/arenadesk/go/internal/models"
)

// State is the session lifecycle state.
type State string

const (
	// StateLoading holds until Restore has read the persisted mirror once.
	StateLoading State = "loading"
	StateUnauthenticated State = "unauthenticated"
	StateAuthenticated   State = "authenticated"
)

// SimulatedToken is the placeholder bearer token SimulateLogin persists.
// It is not a real credential and the API server does not accept it.
const SimulatedToken = "simulated-dev-token"

// Authenticator is the slice of the API client the manager needs.
type Authenticator interface {
	Login(ctx context.Context, creds dashapi.Credentials) (*dashapi.AuthResponse, error)
	Register(ctx context.Context, reg dashapi.Registration) (*dashapi.AuthResponse, error)
}

// Manager owns the session state machine. It is the only writer of the two
// session keys in the store.
type Manager struct {
	auth  Authenticator
	store Store

	mu    sync.Mutex
	state State
}

func NewManager(auth Authenticator, store Store) *Manager {
	return &Manager{
		auth:  auth,
		store: store,
		state: StateLoading,
	}
}

// Restore reads the persisted mirror once and settles the initial state.
// No network round trip happens here.
func (m *Manager) Restore() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store.Get(TokenKey); ok {
		m.state = StateAuthenticated
	} else {
		m.state = StateUnauthenticated
	}
	return m.state
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Login authenticates against the API and persists the returned identity.
func (m *Manager) Login(ctx context.Context, creds dashapi.Credentials) (*dashapi.AuthResponse, error) {
	resp, err := m.auth.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	m.establish(resp)
	log.Info().Str("username", resp.User.Username).Msg("logged in")
	return resp, nil
}

// Register creates an account and persists the returned identity.
func (m *Manager) Register(ctx context.Context, reg dashapi.Registration) (*dashapi.AuthResponse, error) {
	resp, err := m.auth.Register(ctx, reg)
	if err != nil {
		return nil, err
	}
	m.establish(resp)
	log.Info().Str("username", resp.User.Username).Msg("registered")
	return resp, nil
}

// SimulateLogin fabricates an identity without a backend round trip.
// Missing profile fields get demo defaults. It always succeeds; the token
// it persists is a placeholder, not a credential.
func (m *Manager) SimulateLogin(profile models.User) *dashapi.AuthResponse {
	user := profile
	if user.ID == "" {
		user.ID = "user-" + uuid.NewString()
	}
	if user.Username == "" {
		user.Username = "demo_user"
	}
	if user.Email == "" {
		user.Email = "demo@example.com"
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}

	resp := &dashapi.AuthResponse{User: user, Token: SimulatedToken}
	m.establish(resp)
	log.Info().Str("username", user.Username).Msg("simulated login")
	return resp
}

// Logout clears the persisted identity. It cannot fail; store errors are
// logged and the in-memory state still transitions.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.store.Clear(TokenKey); err != nil {
		log.Error().Err(err).Msg("failed to clear session token")
	}
	if err := m.store.Clear(UserKey); err != nil {
		log.Error().Err(err).Msg("failed to clear session user")
	}
	m.state = StateUnauthenticated
}

// CurrentUser returns the persisted identity, or nil when signed out.
// Synchronous read, no network.
func (m *Manager) CurrentUser() *models.User {
	raw, ok := m.store.Get(UserKey)
	if !ok {
		return nil
	}
	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		log.Error().Err(err).Msg("corrupt session user record")
		return nil
	}
	return &user
}

// Token returns the persisted bearer token, or "" when signed out. Manager
// satisfies dashapi.TokenSource so the API client picks the token up
// automatically.
func (m *Manager) Token() string {
	token, _ := m.store.Get(TokenKey)
	return token
}

// IsAuthenticated reports whether a session token is persisted.
func (m *Manager) IsAuthenticated() bool {
	_, ok := m.store.Get(TokenKey)
	return ok
}

func (m *Manager) establish(resp *dashapi.AuthResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.store.Set(TokenKey, resp.Token); err != nil {
		log.Error().Err(err).Msg("failed to persist session token")
	}
	if raw, err := json.Marshal(resp.User); err == nil {
		if err := m.store.Set(UserKey, string(raw)); err != nil {
			log.Error().Err(err).Msg("failed to persist session user")
		}
	}
	m.state = StateAuthenticated
}
