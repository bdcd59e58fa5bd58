package dashapi

import (
	"context"
	"net/http"

	"github.com/arenadesk/arenadesk/go/internal/models"
)

// Credentials is the login request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration is the account-creation request body.
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is what the server returns on successful login or
// registration: the account record plus a bearer token.
type AuthResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// Login exchanges credentials for a user record and bearer token. On a
// non-success response the server's own message is preserved when present;
// otherwise the caller sees a generic login failure.
func (c *Client) Login(ctx context.Context, creds Credentials) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.sendJSON(ctx, http.MethodPost, LoginEndpoint, creds, &resp); err != nil {
		return nil, authErrorf(err, "login failed")
	}
	return &resp, nil
}

// Register creates a new account. Same contract shape as Login.
func (c *Client) Register(ctx context.Context, reg Registration) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.sendJSON(ctx, http.MethodPost, RegisterEndpoint, reg, &resp); err != nil {
		return nil, authErrorf(err, "registration failed")
	}
	return &resp, nil
}
