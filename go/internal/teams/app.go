package teams

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/arenadesk/arenadesk/go/internal/models"
)

// App handles team business logic.
type App struct {
	repo Repository
}

func NewApp(repo Repository) *App {
	return &App{repo: repo}
}

// CreateTeam stores a team, assigning an id when the form did not provide
// one.
func (a *App) CreateTeam(ctx context.Context, team models.Team) (*models.Team, error) {
	if team.ID == "" {
		team.ID = uuid.NewString()
	}
	created, err := a.repo.CreateTeam(ctx, team)
	if err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	return created, nil
}

func (a *App) GetTeam(ctx context.Context, id string) (*models.Team, error) {
	return a.repo.GetTeam(ctx, id)
}

func (a *App) ListTeams(ctx context.Context) ([]models.Team, error) {
	return a.repo.ListTeams(ctx)
}

func (a *App) UpdateTeam(ctx context.Context, id string, team models.Team) (*models.Team, error) {
	return a.repo.UpdateTeam(ctx, id, team)
}

// DeleteTeam removes a team. Players that reference it keep their dangling
// team_id and tournaments keep the id in their team list; nothing cascades.
func (a *App) DeleteTeam(ctx context.Context, id string) error {
	return a.repo.DeleteTeam(ctx, id)
}
