package teams

import (
	"context"
	"sort"
	"sync"

	"github.com/arenadesk/arenadesk/go/internal/apierror"
	"github.com/arenadesk/arenadesk/go/internal/models"
)

// MemoryRepository is the in-memory team store used in dev mode and tests.
type MemoryRepository struct {
	mu    sync.RWMutex
	teams map[string]models.Team
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{teams: make(map[string]models.Team)}
}

func (r *MemoryRepository) CreateTeam(_ context.Context, team models.Team) (*models.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.teams[team.ID]; ok {
		return nil, apierror.Newf(apierror.KindValidation, "team with id %s already exists", team.ID)
	}
	r.teams[team.ID] = team
	return &team, nil
}

func (r *MemoryRepository) GetTeam(_ context.Context, id string) (*models.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	team, ok := r.teams[id]
	if !ok {
		return nil, errTeamNotFound
	}
	return &team, nil
}

func (r *MemoryRepository) ListTeams(_ context.Context) ([]models.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	teams := make([]models.Team, 0, len(r.teams))
	for _, t := range r.teams {
		teams = append(teams, t)
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].Name < teams[j].Name })
	return teams, nil
}

func (r *MemoryRepository) UpdateTeam(_ context.Context, id string, team models.Team) (*models.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.teams[id]; !ok {
		return nil, errTeamNotFound
	}
	team.ID = id
	r.teams[id] = team
	return &team, nil
}

func (r *MemoryRepository) DeleteTeam(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.teams[id]; !ok {
		return errTeamNotFound
	}
	delete(r.teams, id)
	return nil
}
