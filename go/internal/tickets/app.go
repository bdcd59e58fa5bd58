package tickets

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/arenadesk/arenadesk/go/internal/models"
)

// App handles ticket business logic.
type App struct {
	repo Repository
}

func NewApp(repo Repository) *App {
	return &App{repo: repo}
}

// CreateTicket puts a ticket tier on sale.
func (a *App) CreateTicket(ctx context.Context, ticket models.Ticket) (*models.Ticket, error) {
	if ticket.ID == "" {
		ticket.ID = uuid.NewString()
	}
	created, err := a.repo.CreateTicket(ctx, ticket)
	if err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}
	return created, nil
}

func (a *App) GetTicket(ctx context.Context, id string) (*models.Ticket, error) {
	return a.repo.GetTicket(ctx, id)
}

func (a *App) ListTickets(ctx context.Context) ([]models.Ticket, error) {
	return a.repo.ListTickets(ctx)
}
