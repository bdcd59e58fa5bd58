package players

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/arenadesk/arenadesk/go/internal/models"
)

// App handles player business logic.
type App struct {
	repo Repository
}

func NewApp(repo Repository) *App {
	return &App{repo: repo}
}

// CreatePlayer stores a player. An empty team id is a valid state — the
// player is a free agent.
func (a *App) CreatePlayer(ctx context.Context, player models.Player) (*models.Player, error) {
	if player.ID == "" {
		player.ID = uuid.NewString()
	}
	created, err := a.repo.CreatePlayer(ctx, player)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	return created, nil
}

func (a *App) GetPlayer(ctx context.Context, id string) (*models.Player, error) {
	return a.repo.GetPlayer(ctx, id)
}

func (a *App) ListPlayers(ctx context.Context) ([]models.Player, error) {
	return a.repo.ListPlayers(ctx)
}

func (a *App) UpdatePlayer(ctx context.Context, id string, player models.Player) (*models.Player, error) {
	return a.repo.UpdatePlayer(ctx, id, player)
}

func (a *App) DeletePlayer(ctx context.Context, id string) error {
	return a.repo.DeletePlayer(ctx, id)
}
