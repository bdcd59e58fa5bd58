package matches

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arenadesk/arenadesk/go/internal/apierror"
	"github.com/arenadesk/arenadesk/go/internal/models"
)

// Repository defines what the app layer needs from match storage.
type Repository interface {
	CreateMatch(ctx context.Context, match models.Match) (*models.Match, error)
	GetMatch(ctx context.Context, id string) (*models.Match, error)
	ListMatches(ctx context.Context) ([]models.Match, error)
	UpdateMatch(ctx context.Context, id string, match models.Match) (*models.Match, error)
	DeleteMatch(ctx context.Context, id string) error
}

// PostgresRepository implements match storage on Postgres.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

var errMatchNotFound = apierror.New(apierror.KindNotFound, "match not found")

const matchColumns = `id, tournament_id, team1_id, team2_id, team1_score, team2_score, date`

func (r *PostgresRepository) CreateMatch(ctx context.Context, match models.Match) (*models.Match, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO matches (`+matchColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+matchColumns,
		match.ID, match.TournamentID, match.Team1ID, match.Team2ID,
		match.Team1Score, match.Team2Score, match.Date,
	)
	return scanMatch(row)
}

func (r *PostgresRepository) GetMatch(ctx context.Context, id string) (*models.Match, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+matchColumns+` FROM matches WHERE id = $1`, id)
	return scanMatch(row)
}

func (r *PostgresRepository) ListMatches(ctx context.Context) ([]models.Match, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+matchColumns+` FROM matches ORDER BY date DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	matches := []models.Match{}
	for rows.Next() {
		var m models.Match
		if err := rows.Scan(&m.ID, &m.TournamentID, &m.Team1ID, &m.Team2ID,
			&m.Team1Score, &m.Team2Score, &m.Date); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

func (r *PostgresRepository) UpdateMatch(ctx context.Context, id string, match models.Match) (*models.Match, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE matches
		 SET tournament_id = $2, team1_id = $3, team2_id = $4,
		     team1_score = $5, team2_score = $6, date = $7
		 WHERE id = $1
		 RETURNING `+matchColumns,
		id, match.TournamentID, match.Team1ID, match.Team2ID,
		match.Team1Score, match.Team2Score, match.Date,
	)
	return scanMatch(row)
}

func (r *PostgresRepository) DeleteMatch(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM matches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errMatchNotFound
	}
	return nil
}

func scanMatch(row pgx.Row) (*models.Match, error) {
	var m models.Match
	err := row.Scan(&m.ID, &m.TournamentID, &m.Team1ID, &m.Team2ID,
		&m.Team1Score, &m.Team2Score, &m.Date)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errMatchNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan match: %w", err)
	}
	return &m, nil
}
