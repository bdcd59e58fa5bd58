package dashapi

import (
	"context"
	"net/http"

	"github.com/arenadesk/arenadesk/go/internal/models"
)

// ListTickets retrieves every ticket tier currently on sale.
func (c *Client) ListTickets(ctx context.Context) ([]models.Ticket, error) {
	var tickets []models.Ticket
	if err := c.getJSON(ctx, TicketsEndpoint, &tickets); err != nil {
		return nil, opErrorf(err, "failed to fetch tickets")
	}
	return tickets, nil
}

// GetTicket retrieves a ticket tier by id.
func (c *Client) GetTicket(ctx context.Context, id string) (*models.Ticket, error) {
	if err := requireID(id, "ticket"); err != nil {
		return nil, err
	}
	var ticket models.Ticket
	if err := c.getJSON(ctx, TicketsEndpoint+"/"+id, &ticket); err != nil {
		return nil, opErrorf(err, "failed to fetch ticket with id %s", id)
	}
	return &ticket, nil
}

// CreateTicket puts a ticket tier on sale for a tournament.
func (c *Client) CreateTicket(ctx context.Context, ticket models.Ticket) (*models.Ticket, error) {
	var created models.Ticket
	if err := c.sendJSON(ctx, http.MethodPost, TicketsEndpoint, ticket, &created); err != nil {
		return nil, opErrorf(err, "failed to create ticket")
	}
	return &created, nil
}
