package tournaments

import (
	"context"
	"sort"
	"sync"

	"github.com/arenadesk/arenadesk/go/internal/apierror"
	"github.com/arenadesk/arenadesk/go/internal/models"
)

// MemoryRepository is the in-memory tournament store used in dev mode and
// tests. Same not-found semantics as the Postgres repository.
type MemoryRepository struct {
	mu          sync.RWMutex
	tournaments map[string]models.Tournament
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{tournaments: make(map[string]models.Tournament)}
}

func (r *MemoryRepository) CreateTournament(_ context.Context, tournament models.Tournament) (*models.Tournament, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tournaments[tournament.ID]; ok {
		return nil, apierror.Newf(apierror.KindValidation, "tournament with id %s already exists", tournament.ID)
	}
	r.tournaments[tournament.ID] = tournament
	return &tournament, nil
}

func (r *MemoryRepository) GetTournament(_ context.Context, id string) (*models.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tournament, ok := r.tournaments[id]
	if !ok {
		return nil, errTournamentNotFound
	}
	return &tournament, nil
}

func (r *MemoryRepository) ListTournaments(_ context.Context) ([]models.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tournaments := make([]models.Tournament, 0, len(r.tournaments))
	for _, t := range r.tournaments {
		tournaments = append(tournaments, t)
	}
	sort.Slice(tournaments, func(i, j int) bool {
		if tournaments[i].StartDate != tournaments[j].StartDate {
			return tournaments[i].StartDate < tournaments[j].StartDate
		}
		return tournaments[i].Name < tournaments[j].Name
	})
	return tournaments, nil
}

func (r *MemoryRepository) UpdateTournament(_ context.Context, id string, tournament models.Tournament) (*models.Tournament, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tournaments[id]; !ok {
		return nil, errTournamentNotFound
	}
	tournament.ID = id
	r.tournaments[id] = tournament
	return &tournament, nil
}

func (r *MemoryRepository) DeleteTournament(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tournaments[id]; !ok {
		return errTournamentNotFound
	}
	delete(r.tournaments, id)
	return nil
}
