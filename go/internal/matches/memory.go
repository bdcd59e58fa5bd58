package matches

import (
	"context"
	"sort"
	"sync"

	"github.com/arenadesk/arenadesk/go/internal/apierror"
	"github.com/arenadesk/arenadesk/go/internal/models"
)

// MemoryRepository is the in-memory match store used in dev mode and tests.
type MemoryRepository struct {
	mu      sync.RWMutex
	matches map[string]models.Match
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{matches: make(map[string]models.Match)}
}

func (r *MemoryRepository) CreateMatch(_ context.Context, match models.Match) (*models.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.matches[match.ID]; ok {
		return nil, apierror.Newf(apierror.KindValidation, "match with id %s already exists", match.ID)
	}
	r.matches[match.ID] = match
	return &match, nil
}

func (r *MemoryRepository) GetMatch(_ context.Context, id string) (*models.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	match, ok := r.matches[id]
	if !ok {
		return nil, errMatchNotFound
	}
	return &match, nil
}

func (r *MemoryRepository) ListMatches(_ context.Context) ([]models.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matches := make([]models.Match, 0, len(r.matches))
	for _, m := range r.matches {
		matches = append(matches, m)
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Date != matches[j].Date {
			return matches[i].Date > matches[j].Date
		}
		return matches[i].ID < matches[j].ID
	})
	return matches, nil
}

func (r *MemoryRepository) UpdateMatch(_ context.Context, id string, match models.Match) (*models.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.matches[id]; !ok {
		return nil, errMatchNotFound
	}
	match.ID = id
	r.matches[id] = match
	return &match, nil
}

func (r *MemoryRepository) DeleteMatch(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.matches[id]; !ok {
		return errMatchNotFound
	}
	delete(r.matches, id)
	return nil
}
