package teams

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arenadesk/arenadesk/go/internal/apierror"
	"github.com/arenadesk/arenadesk/go/internal/models"
)

// Repository defines what the app layer needs from team storage.
type Repository interface {
	CreateTeam(ctx context.Context, team models.Team) (*models.Team, error)
	GetTeam(ctx context.Context, id string) (*models.Team, error)
	ListTeams(ctx context.Context) ([]models.Team, error)
	UpdateTeam(ctx context.Context, id string, team models.Team) (*models.Team, error)
	DeleteTeam(ctx context.Context, id string) error
}

// PostgresRepository implements team storage on Postgres.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

var errTeamNotFound = apierror.New(apierror.KindNotFound, "team not found")

func (r *PostgresRepository) CreateTeam(ctx context.Context, team models.Team) (*models.Team, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO teams (id, name, region, logo)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, name, region, logo`,
		team.ID, team.Name, team.Region, team.Logo,
	)
	return scanTeam(row)
}

func (r *PostgresRepository) GetTeam(ctx context.Context, id string) (*models.Team, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, name, region, logo FROM teams WHERE id = $1`, id)
	return scanTeam(row)
}

func (r *PostgresRepository) ListTeams(ctx context.Context) ([]models.Team, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, region, logo FROM teams ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	teams := []models.Team{}
	for rows.Next() {
		var t models.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.Region, &t.Logo); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (r *PostgresRepository) UpdateTeam(ctx context.Context, id string, team models.Team) (*models.Team, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE teams SET name = $2, region = $3, logo = $4
		 WHERE id = $1
		 RETURNING id, name, region, logo`,
		id, team.Name, team.Region, team.Logo,
	)
	return scanTeam(row)
}

func (r *PostgresRepository) DeleteTeam(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errTeamNotFound
	}
	return nil
}

func scanTeam(row pgx.Row) (*models.Team, error) {
	var t models.Team
	err := row.Scan(&t.ID, &t.Name, &t.Region, &t.Logo)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errTeamNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan team: %w", err)
	}
	return &t, nil
}
