package tournaments

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arenadesk/arenadesk/go/internal/apierror"
	"github.com/arenadesk/arenadesk/go/internal/models"
)

// Repository defines what the app layer needs from tournament storage.
type Repository interface {
	CreateTournament(ctx context.Context, tournament models.Tournament) (*models.Tournament, error)
	GetTournament(ctx context.Context, id string) (*models.Tournament, error)
	ListTournaments(ctx context.Context) ([]models.Tournament, error)
	UpdateTournament(ctx context.Context, id string, tournament models.Tournament) (*models.Tournament, error)
	DeleteTournament(ctx context.Context, id string) error
}

// PostgresRepository implements tournament storage on Postgres.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

var errTournamentNotFound = apierror.New(apierror.KindNotFound, "tournament not found")

func (r *PostgresRepository) CreateTournament(ctx context.Context, tournament models.Tournament) (*models.Tournament, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO tournaments (id, name, location, start_date, end_date, teams)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, name, location, start_date, end_date, teams`,
		tournament.ID, tournament.Name, tournament.Location,
		tournament.StartDate, tournament.EndDate, tournament.Teams,
	)
	return scanTournament(row)
}

func (r *PostgresRepository) GetTournament(ctx context.Context, id string) (*models.Tournament, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, name, location, start_date, end_date, teams
		 FROM tournaments WHERE id = $1`, id)
	return scanTournament(row)
}

func (r *PostgresRepository) ListTournaments(ctx context.Context) ([]models.Tournament, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, location, start_date, end_date, teams
		 FROM tournaments ORDER BY start_date, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}
	defer rows.Close()

	tournaments := []models.Tournament{}
	for rows.Next() {
		var t models.Tournament
		if err := rows.Scan(&t.ID, &t.Name, &t.Location, &t.StartDate, &t.EndDate, &t.Teams); err != nil {
			return nil, fmt.Errorf("failed to scan tournament: %w", err)
		}
		tournaments = append(tournaments, t)
	}
	return tournaments, rows.Err()
}

func (r *PostgresRepository) UpdateTournament(ctx context.Context, id string, tournament models.Tournament) (*models.Tournament, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE tournaments
		 SET name = $2, location = $3, start_date = $4, end_date = $5, teams = $6
		 WHERE id = $1
		 RETURNING id, name, location, start_date, end_date, teams`,
		id, tournament.Name, tournament.Location,
		tournament.StartDate, tournament.EndDate, tournament.Teams,
	)
	return scanTournament(row)
}

func (r *PostgresRepository) DeleteTournament(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tournaments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete tournament: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errTournamentNotFound
	}
	return nil
}

func scanTournament(row pgx.Row) (*models.Tournament, error) {
	var t models.Tournament
	err := row.Scan(&t.ID, &t.Name, &t.Location, &t.StartDate, &t.EndDate, &t.Teams)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errTournamentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan tournament: %w", err)
	}
	return &t, nil
}
