package dashapi

import (
	"context"
	"net/http"

	"github.com/arenadesk/arenadesk/go/internal/models"
)

// ListOrders retrieves every order. Admin-only screen in practice, but the
// client does not gate it.
func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.getJSON(ctx, OrdersEndpoint, &orders); err != nil {
		return nil, opErrorf(err, "failed to fetch orders")
	}
	return orders, nil
}

// GetOrder retrieves an order by id.
func (c *Client) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	if err := requireID(id, "order"); err != nil {
		return nil, err
	}
	var order models.Order
	if err := c.getJSON(ctx, OrdersEndpoint+"/"+id, &order); err != nil {
		return nil, opErrorf(err, "failed to fetch order with id %s", id)
	}
	return &order, nil
}

// CreateOrder records a completed ticket purchase.
func (c *Client) CreateOrder(ctx context.Context, order models.Order) (*models.Order, error) {
	var created models.Order
	if err := c.sendJSON(ctx, http.MethodPost, OrdersEndpoint, order, &created); err != nil {
		return nil, opErrorf(err, "failed to create order")
	}
	return &created, nil
}

// ListUserOrders retrieves the order history of a single user.
func (c *Client) ListUserOrders(ctx context.Context, userID string) ([]models.Order, error) {
	if err := requireID(userID, "user"); err != nil {
		return nil, err
	}
	var orders []models.Order
	if err := c.getJSON(ctx, UsersEndpoint+"/"+userID+OrdersEndpoint, &orders); err != nil {
		return nil, opErrorf(err, "failed to fetch orders for user %s", userID)
	}
	return orders, nil
}
