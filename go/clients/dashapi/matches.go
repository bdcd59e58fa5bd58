package dashapi

import (
	"context"
	"net/http"

	"github.com/arenadesk/arenadesk/go/internal/apierror"
	"github.com/arenadesk/arenadesk/go/internal/models"
)

// ListMatches retrieves every match.
func (c *Client) ListMatches(ctx context.Context) ([]models.Match, error) {
	var matches []models.Match
	if err := c.getJSON(ctx, MatchesEndpoint, &matches); err != nil {
		return nil, opErrorf(err, "failed to fetch matches")
	}
	return matches, nil
}

// GetMatch retrieves a match by id.
func (c *Client) GetMatch(ctx context.Context, id string) (*models.Match, error) {
	if err := requireID(id, "match"); err != nil {
		return nil, err
	}
	var match models.Match
	if err := c.getJSON(ctx, MatchesEndpoint+"/"+id, &match); err != nil {
		return nil, opErrorf(err, "failed to fetch match with id %s", id)
	}
	return &match, nil
}

// CreateMatch creates a match and returns the stored record. A match
// between a team and itself is rejected before the request goes out.
func (c *Client) CreateMatch(ctx context.Context, match models.Match) (*models.Match, error) {
	if err := validateMatch(match); err != nil {
		return nil, err
	}
	var created models.Match
	if err := c.sendJSON(ctx, http.MethodPost, MatchesEndpoint, match, &created); err != nil {
		return nil, opErrorf(err, "failed to create match")
	}
	return &created, nil
}

// UpdateMatch replaces the match with the given id.
func (c *Client) UpdateMatch(ctx context.Context, id string, match models.Match) (*models.Match, error) {
	if err := requireID(id, "match"); err != nil {
		return nil, err
	}
	if err := validateMatch(match); err != nil {
		return nil, err
	}
	var updated models.Match
	if err := c.sendJSON(ctx, http.MethodPut, MatchesEndpoint+"/"+id, match, &updated); err != nil {
		return nil, opErrorf(err, "failed to update match with id %s", id)
	}
	return &updated, nil
}

// DeleteMatch deletes a match by id.
func (c *Client) DeleteMatch(ctx context.Context, id string) error {
	if err := requireID(id, "match"); err != nil {
		return err
	}
	if err := c.deleteResource(ctx, MatchesEndpoint+"/"+id); err != nil {
		return opErrorf(err, "failed to delete match with id %s", id)
	}
	return nil
}

func validateMatch(match models.Match) error {
	if match.Team1ID == match.Team2ID {
		return apierror.New(apierror.KindValidation, "a match requires two different teams")
	}
	if match.Team1Score < 0 || match.Team2Score < 0 {
		return apierror.New(apierror.KindValidation, "scores must not be negative")
	}
	return nil
}
