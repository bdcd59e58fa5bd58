package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/arenadesk/arenadesk/go/internal/apierror"
	"github.com/arenadesk/arenadesk/go/internal/models"
)

// App handles registration and login.
type App struct {
	repo   Repository
	tokens *TokenProvider
}

func NewApp(repo Repository, tokens *TokenProvider) *App {
	return &App{repo: repo, tokens: tokens}
}

var errInvalidCredentials = apierror.New(apierror.KindUnauthorized, "invalid username or password")

// Register creates an account with a hashed password and returns the new
// user along with a signed session token.
func (a *App) Register(ctx context.Context, username, email, password string) (*models.User, string, error) {
	if _, err := a.repo.GetAccountByUsername(ctx, username); err == nil {
		return nil, "", apierror.New(apierror.KindValidation, "username already taken")
	} else if apierror.KindOf(err) != apierror.KindNotFound {
		return nil, "", fmt.Errorf("failed to check username: %w", err)
	}
	if _, err := a.repo.GetAccountByEmail(ctx, email); err == nil {
		return nil, "", apierror.New(apierror.KindValidation, "email already registered")
	} else if apierror.KindOf(err) != apierror.KindNotFound {
		return nil, "", fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	account := Account{
		User: models.User{
			ID:       uuid.NewString(),
			Username: username,
			Email:    email,
			Role:     models.RoleUser,
		},
		PasswordHash: string(hash),
	}
	created, err := a.repo.CreateAccount(ctx, account)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create account: %w", err)
	}

	token, err := a.tokens.GenerateToken(created.User)
	if err != nil {
		return nil, "", err
	}
	return &created.User, token, nil
}

// Login verifies credentials and returns the user with a fresh session
// token. Lookup misses and hash mismatches produce the same error so the
// response does not reveal which usernames exist.
func (a *App) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	account, err := a.repo.GetAccountByUsername(ctx, username)
	if err != nil {
		if apierror.KindOf(err) == apierror.KindNotFound {
			return nil, "", errInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to look up account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, "", errInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to compare password: %w", err)
	}

	token, err := a.tokens.GenerateToken(account.User)
	if err != nil {
		return nil, "", err
	}
	return &account.User, token, nil
}
