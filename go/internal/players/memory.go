package players

import (
	"context"
	"sort"
	"sync"

	"github.com/arenadesk/arenadesk/go/internal/apierror"
	"github.com/arenadesk/arenadesk/go/internal/models"
)

// MemoryRepository is the in-memory player store used in dev mode and tests.
type MemoryRepository struct {
	mu      sync.RWMutex
	players map[string]models.Player
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{players: make(map[string]models.Player)}
}

func (r *MemoryRepository) CreatePlayer(_ context.Context, player models.Player) (*models.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.players[player.ID]; ok {
		return nil, apierror.Newf(apierror.KindValidation, "player with id %s already exists", player.ID)
	}
	r.players[player.ID] = player
	return &player, nil
}

func (r *MemoryRepository) GetPlayer(_ context.Context, id string) (*models.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	player, ok := r.players[id]
	if !ok {
		return nil, errPlayerNotFound
	}
	return &player, nil
}

func (r *MemoryRepository) ListPlayers(_ context.Context) ([]models.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	players := make([]models.Player, 0, len(r.players))
	for _, p := range r.players {
		players = append(players, p)
	}
	sort.Slice(players, func(i, j int) bool { return players[i].Name < players[j].Name })
	return players, nil
}

func (r *MemoryRepository) UpdatePlayer(_ context.Context, id string, player models.Player) (*models.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.players[id]; !ok {
		return nil, errPlayerNotFound
	}
	player.ID = id
	r.players[id] = player
	return &player, nil
}

func (r *MemoryRepository) DeletePlayer(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.players[id]; !ok {
		return errPlayerNotFound
	}
	delete(r.players, id)
	return nil
}
