package matches

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/arenadesk/arenadesk/go/internal/apierror"
	"github.com/arenadesk/arenadesk/go/internal/models"
)

// App handles match business logic.
type App struct {
	repo Repository
}

func NewApp(repo Repository) *App {
	return &App{repo: repo}
}

// CreateMatch stores a match after checking the two-distinct-teams rule.
// The client enforces the same rule before submitting; this is the
// server-side backstop.
func (a *App) CreateMatch(ctx context.Context, match models.Match) (*models.Match, error) {
	if err := validateMatch(match); err != nil {
		return nil, err
	}
	if match.ID == "" {
		match.ID = uuid.NewString()
	}
	created, err := a.repo.CreateMatch(ctx, match)
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}
	return created, nil
}

func (a *App) GetMatch(ctx context.Context, id string) (*models.Match, error) {
	return a.repo.GetMatch(ctx, id)
}

func (a *App) ListMatches(ctx context.Context) ([]models.Match, error) {
	return a.repo.ListMatches(ctx)
}

func (a *App) UpdateMatch(ctx context.Context, id string, match models.Match) (*models.Match, error) {
	if err := validateMatch(match); err != nil {
		return nil, err
	}
	return a.repo.UpdateMatch(ctx, id, match)
}

func (a *App) DeleteMatch(ctx context.Context, id string) error {
	return a.repo.DeleteMatch(ctx, id)
}

func validateMatch(match models.Match) error {
	if match.Team1ID == match.Team2ID {
		return apierror.New(apierror.KindValidation, "a match requires two different teams")
	}
	if match.Team1Score < 0 || match.Team2Score < 0 {
		return apierror.New(apierror.KindValidation, "scores must not be negative")
	}
	return nil
}
