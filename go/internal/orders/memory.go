package orders

import (
	"context"
	"sort"
	"sync"

	"github.com/arenadesk/arenadesk/go/internal/apierror"
	"github.com/arenadesk/arenadesk/go/internal/models"
)

// MemoryRepository is the in-memory order store used in dev mode and tests.
type MemoryRepository struct {
	mu     sync.RWMutex
	orders map[string]models.Order
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{orders: make(map[string]models.Order)}
}

func (r *MemoryRepository) CreateOrder(_ context.Context, order models.Order) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[order.ID]; ok {
		return nil, apierror.Newf(apierror.KindValidation, "order with id %s already exists", order.ID)
	}
	r.orders[order.ID] = order
	return &order, nil
}

func (r *MemoryRepository) GetOrder(_ context.Context, id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, errOrderNotFound
	}
	return &order, nil
}

func (r *MemoryRepository) ListOrders(_ context.Context) ([]models.Order, error) {
	return r.collect(func(models.Order) bool { return true }), nil
}

func (r *MemoryRepository) ListOrdersByUser(_ context.Context, userID string) ([]models.Order, error) {
	return r.collect(func(o models.Order) bool { return o.UserID == userID }), nil
}

func (r *MemoryRepository) collect(keep func(models.Order) bool) []models.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	orders := []models.Order{}
	for _, o := range r.orders {
		if keep(o) {
			orders = append(orders, o)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt) })
	return orders
}
