package tickets

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arenadesk/arenadesk/go/internal/apierror"
	"github.com/arenadesk/arenadesk/go/internal/models"
)

// Repository defines what the app layer needs from ticket storage.
type Repository interface {
	CreateTicket(ctx context.Context, ticket models.Ticket) (*models.Ticket, error)
	GetTicket(ctx context.Context, id string) (*models.Ticket, error)
	ListTickets(ctx context.Context) ([]models.Ticket, error)
}

// PostgresRepository implements ticket storage on Postgres.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

var errTicketNotFound = apierror.New(apierror.KindNotFound, "ticket not found")

func (r *PostgresRepository) CreateTicket(ctx context.Context, ticket models.Ticket) (*models.Ticket, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO tickets (id, tournament_id, name, price, available)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, tournament_id, name, price, available`,
		ticket.ID, ticket.TournamentID, ticket.Name, ticket.Price, ticket.Available,
	)
	return scanTicket(row)
}

func (r *PostgresRepository) GetTicket(ctx context.Context, id string) (*models.Ticket, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, tournament_id, name, price, available FROM tickets WHERE id = $1`, id)
	return scanTicket(row)
}

func (r *PostgresRepository) ListTickets(ctx context.Context) ([]models.Ticket, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, tournament_id, name, price, available FROM tickets ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	defer rows.Close()

	tickets := []models.Ticket{}
	for rows.Next() {
		var t models.Ticket
		if err := rows.Scan(&t.ID, &t.TournamentID, &t.Name, &t.Price, &t.Available); err != nil {
			return nil, fmt.Errorf("failed to scan ticket: %w", err)
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

func scanTicket(row pgx.Row) (*models.Ticket, error) {
	var t models.Ticket
	err := row.Scan(&t.ID, &t.TournamentID, &t.Name, &t.Price, &t.Available)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errTicketNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan ticket: %w", err)
	}
	return &t, nil
}
