package tournaments

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/arenadesk/arenadesk/go/internal/models"
)

// App handles tournament business logic.
type App struct {
	repo Repository
}

func NewApp(repo Repository) *App {
	return &App{repo: repo}
}

// CreateTournament stores a tournament, assigning an id when the form did
// not provide one. Start/end date ordering is intentionally not checked —
// the admin forms never enforced it and existing data has inverted ranges.
func (a *App) CreateTournament(ctx context.Context, tournament models.Tournament) (*models.Tournament, error) {
	if tournament.ID == "" {
		tournament.ID = uuid.NewString()
	}
	if tournament.Teams == nil {
		tournament.Teams = []string{}
	}
	created, err := a.repo.CreateTournament(ctx, tournament)
	if err != nil {
		return nil, fmt.Errorf("failed to create tournament: %w", err)
	}
	return created, nil
}

func (a *App) GetTournament(ctx context.Context, id string) (*models.Tournament, error) {
	return a.repo.GetTournament(ctx, id)
}

func (a *App) ListTournaments(ctx context.Context) ([]models.Tournament, error) {
	return a.repo.ListTournaments(ctx)
}

func (a *App) UpdateTournament(ctx context.Context, id string, tournament models.Tournament) (*models.Tournament, error) {
	if tournament.Teams == nil {
		tournament.Teams = []string{}
	}
	updated, err := a.repo.UpdateTournament(ctx, id, tournament)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (a *App) DeleteTournament(ctx context.Context, id string) error {
	return a.repo.DeleteTournament(ctx, id)
}
