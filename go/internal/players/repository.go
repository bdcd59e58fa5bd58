package players

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arenadesk/arenadesk/go/internal/apierror"
	"github.com/arenadesk/arenadesk/go/internal/models"
)

// Repository defines what the app layer needs from player storage.
type Repository interface {
	CreatePlayer(ctx context.Context, player models.Player) (*models.Player, error)
	GetPlayer(ctx context.Context, id string) (*models.Player, error)
	ListPlayers(ctx context.Context) ([]models.Player, error)
	UpdatePlayer(ctx context.Context, id string, player models.Player) (*models.Player, error)
	DeletePlayer(ctx context.Context, id string) error
}

// PostgresRepository implements player storage on Postgres. team_id is
// nullable; an empty model value maps to NULL.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

var errPlayerNotFound = apierror.New(apierror.KindNotFound, "player not found")

func (r *PostgresRepository) CreatePlayer(ctx context.Context, player models.Player) (*models.Player, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO players (id, name, in_game_name, role, team_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, name, in_game_name, role, team_id`,
		player.ID, player.Name, player.InGameName, player.Role, toNullable(player.TeamID),
	)
	return scanPlayer(row)
}

func (r *PostgresRepository) GetPlayer(ctx context.Context, id string) (*models.Player, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, name, in_game_name, role, team_id FROM players WHERE id = $1`, id)
	return scanPlayer(row)
}

func (r *PostgresRepository) ListPlayers(ctx context.Context) ([]models.Player, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, in_game_name, role, team_id FROM players ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	players := []models.Player{}
	for rows.Next() {
		player, err := scanPlayerRow(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, *player)
	}
	return players, rows.Err()
}

func (r *PostgresRepository) UpdatePlayer(ctx context.Context, id string, player models.Player) (*models.Player, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE players SET name = $2, in_game_name = $3, role = $4, team_id = $5
		 WHERE id = $1
		 RETURNING id, name, in_game_name, role, team_id`,
		id, player.Name, player.InGameName, player.Role, toNullable(player.TeamID),
	)
	return scanPlayer(row)
}

func (r *PostgresRepository) DeletePlayer(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM players WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errPlayerNotFound
	}
	return nil
}

func scanPlayer(row pgx.Row) (*models.Player, error) {
	player, err := scanPlayerRow(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errPlayerNotFound
	}
	return player, err
}

func scanPlayerRow(row pgx.Row) (*models.Player, error) {
	var p models.Player
	var teamID *string
	if err := row.Scan(&p.ID, &p.Name, &p.InGameName, &p.Role, &teamID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan player: %w", err)
	}
	if teamID != nil {
		p.TeamID = *teamID
	}
	return &p, nil
}

func toNullable(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
