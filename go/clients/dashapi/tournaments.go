package dashapi

import (
	"context"
	"net/http"

	"github.com/arenadesk/arenadesk/go/internal/models"
)

// ListTournaments retrieves every tournament. List screens filter
// client-side, so there is no server-side pagination or search here.
func (c *Client) ListTournaments(ctx context.Context) ([]models.Tournament, error) {
	var tournaments []models.Tournament
	if err := c.getJSON(ctx, TournamentsEndpoint, &tournaments); err != nil {
		return nil, opErrorf(err, "failed to fetch tournaments")
	}
	return tournaments, nil
}

// GetTournament retrieves a tournament by id.
func (c *Client) GetTournament(ctx context.Context, id string) (*models.Tournament, error) {
	if err := requireID(id, "tournament"); err != nil {
		return nil, err
	}
	var tournament models.Tournament
	if err := c.getJSON(ctx, TournamentsEndpoint+"/"+id, &tournament); err != nil {
		return nil, opErrorf(err, "failed to fetch tournament with id %s", id)
	}
	return &tournament, nil
}

// CreateTournament creates a tournament and returns the stored record.
func (c *Client) CreateTournament(ctx context.Context, tournament models.Tournament) (*models.Tournament, error) {
	var created models.Tournament
	if err := c.sendJSON(ctx, http.MethodPost, TournamentsEndpoint, tournament, &created); err != nil {
		return nil, opErrorf(err, "failed to create tournament")
	}
	return &created, nil
}

// UpdateTournament replaces the tournament with the given id.
func (c *Client) UpdateTournament(ctx context.Context, id string, tournament models.Tournament) (*models.Tournament, error) {
	if err := requireID(id, "tournament"); err != nil {
		return nil, err
	}
	var updated models.Tournament
	if err := c.sendJSON(ctx, http.MethodPut, TournamentsEndpoint+"/"+id, tournament, &updated); err != nil {
		return nil, opErrorf(err, "failed to update tournament with id %s", id)
	}
	return &updated, nil
}

// DeleteTournament deletes a tournament by id.
func (c *Client) DeleteTournament(ctx context.Context, id string) error {
	if err := requireID(id, "tournament"); err != nil {
		return err
	}
	if err := c.deleteResource(ctx, TournamentsEndpoint+"/"+id); err != nil {
		return opErrorf(err, "failed to delete tournament with id %s", id)
	}
	return nil
}
