package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arenadesk/arenadesk/go/internal/apierror"
	"github.com/arenadesk/arenadesk/go/internal/models"
)

// Account couples the public user record with its credential hash. The
// hash never leaves this package.
type Account struct {
	User         models.User
	PasswordHash string
}

// Repository defines what the app layer needs from account storage.
type Repository interface {
	CreateAccount(ctx context.Context, account Account) (*Account, error)
	GetAccountByUsername(ctx context.Context, username string) (*Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*Account, error)
}

// PostgresRepository implements account storage on Postgres.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

var errAccountNotFound = apierror.New(apierror.KindNotFound, "account not found")

func (r *PostgresRepository) CreateAccount(ctx context.Context, account Account) (*Account, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO users (id, username, email, role, password_hash)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, username, email, role, password_hash`,
		account.User.ID, account.User.Username, account.User.Email,
		account.User.Role, account.PasswordHash,
	)
	return scanAccount(row)
}

func (r *PostgresRepository) GetAccountByUsername(ctx context.Context, username string) (*Account, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, username, email, role, password_hash FROM users WHERE username = $1`, username)
	return scanAccount(row)
}

func (r *PostgresRepository) GetAccountByEmail(ctx context.Context, email string) (*Account, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, username, email, role, password_hash FROM users WHERE email = $1`, email)
	return scanAccount(row)
}

func scanAccount(row pgx.Row) (*Account, error) {
	var a Account
	err := row.Scan(&a.User.ID, &a.User.Username, &a.User.Email, &a.User.Role, &a.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan account: %w", err)
	}
	return &a, nil
}
