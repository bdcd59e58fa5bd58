package dashapi

import (
	"context"
	"net/http"

	"github.com/arenadesk/arenadesk/go/internal/models"
)

// ListPlayers retrieves every player.
func (c *Client) ListPlayers(ctx context.Context) ([]models.Player, error) {
	var players []models.Player
	if err := c.getJSON(ctx, PlayersEndpoint, &players); err != nil {
		return nil, opErrorf(err, "failed to fetch players")
	}
	return players, nil
}

// GetPlayer retrieves a player by id.
func (c *Client) GetPlayer(ctx context.Context, id string) (*models.Player, error) {
	if err := requireID(id, "player"); err != nil {
		return nil, err
	}
	var player models.Player
	if err := c.getJSON(ctx, PlayersEndpoint+"/"+id, &player); err != nil {
		return nil, opErrorf(err, "failed to fetch player with id %s", id)
	}
	return &player, nil
}

// CreatePlayer creates a player and returns the stored record.
func (c *Client) CreatePlayer(ctx context.Context, player models.Player) (*models.Player, error) {
	var created models.Player
	if err := c.sendJSON(ctx, http.MethodPost, PlayersEndpoint, player, &created); err != nil {
		return nil, opErrorf(err, "failed to create player")
	}
	return &created, nil
}

// UpdatePlayer replaces the player with the given id.
func (c *Client) UpdatePlayer(ctx context.Context, id string, player models.Player) (*models.Player, error) {
	if err := requireID(id, "player"); err != nil {
		return nil, err
	}
	var updated models.Player
	if err := c.sendJSON(ctx, http.MethodPut, PlayersEndpoint+"/"+id, player, &updated); err != nil {
		return nil, opErrorf(err, "failed to update player with id %s", id)
	}
	return &updated, nil
}

// DeletePlayer deletes a player by id.
func (c *Client) DeletePlayer(ctx context.Context, id string) error {
	if err := requireID(id, "player"); err != nil {
		return err
	}
	if err := c.deleteResource(ctx, PlayersEndpoint+"/"+id); err != nil {
		return opErrorf(err, "failed to delete player with id %s", id)
	}
	return nil
}
