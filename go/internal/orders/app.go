package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arenadesk/arenadesk/go/internal/apierror"
	"github.com/arenadesk/arenadesk/go/internal/models"
)

// App handles order business logic.
type App struct {
	repo Repository
}

func NewApp(repo Repository) *App {
	return &App{repo: repo}
}

// CreateOrder records a ticket purchase. The checkout flow completes
// payment first and submits the transaction id it got back; there is no
// idempotency key, so a retried submission records a second order.
func (a *App) CreateOrder(ctx context.Context, order models.Order) (*models.Order, error) {
	if order.Quantity < 1 {
		return nil, apierror.New(apierror.KindValidation, "order quantity must be at least 1")
	}
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.Status == "" {
		order.Status = models.OrderStatusCompleted
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}
	created, err := a.repo.CreateOrder(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return created, nil
}

func (a *App) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	return a.repo.GetOrder(ctx, id)
}

func (a *App) ListOrders(ctx context.Context) ([]models.Order, error) {
	return a.repo.ListOrders(ctx)
}

func (a *App) ListOrdersByUser(ctx context.Context, userID string) ([]models.Order, error) {
	return a.repo.ListOrdersByUser(ctx, userID)
}
