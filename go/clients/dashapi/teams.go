package dashapi

import (
	"context"
	"net/http"

	"github.com/arenadesk/arenadesk/go/internal/models"
)

// ListTeams retrieves every team.
func (c *Client) ListTeams(ctx context.Context) ([]models.Team, error) {
	var teams []models.Team
	if err := c.getJSON(ctx, TeamsEndpoint, &teams); err != nil {
		return nil, opErrorf(err, "failed to fetch teams")
	}
	return teams, nil
}

// GetTeam retrieves a team by id.
func (c *Client) GetTeam(ctx context.Context, id string) (*models.Team, error) {
	if err := requireID(id, "team"); err != nil {
		return nil, err
	}
	var team models.Team
	if err := c.getJSON(ctx, TeamsEndpoint+"/"+id, &team); err != nil {
		return nil, opErrorf(err, "failed to fetch team with id %s", id)
	}
	return &team, nil
}

// CreateTeam creates a team and returns the stored record.
func (c *Client) CreateTeam(ctx context.Context, team models.Team) (*models.Team, error) {
	var created models.Team
	if err := c.sendJSON(ctx, http.MethodPost, TeamsEndpoint, team, &created); err != nil {
		return nil, opErrorf(err, "failed to create team")
	}
	return &created, nil
}

// UpdateTeam replaces the team with the given id.
func (c *Client) UpdateTeam(ctx context.Context, id string, team models.Team) (*models.Team, error) {
	if err := requireID(id, "team"); err != nil {
		return nil, err
	}
	var updated models.Team
	if err := c.sendJSON(ctx, http.MethodPut, TeamsEndpoint+"/"+id, team, &updated); err != nil {
		return nil, opErrorf(err, "failed to update team with id %s", id)
	}
	return &updated, nil
}

// DeleteTeam deletes a team by id. Players referencing the team keep their
// dangling team_id; there is no cascade.
func (c *Client) DeleteTeam(ctx context.Context, id string) error {
	if err := requireID(id, "team"); err != nil {
		return err
	}
	if err := c.deleteResource(ctx, TeamsEndpoint+"/"+id); err != nil {
		return opErrorf(err, "failed to delete team with id %s", id)
	}
	return nil
}
