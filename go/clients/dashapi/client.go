// Package dashapi is the typed client for the tournament dashboard REST
// API. One method per entity and operation; no caching, no retries — every
// call is a fresh round trip.
package dashapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/arenadesk/arenadesk/go/clients"
	"github.com/arenadesk/arenadesk/go/internal/apierror"
)

// TokenSource provides the bearer token attached to authenticated requests.
// An empty token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// Client is the dashboard API facade.
type Client struct {
	*clients.BaseClient
	tokens TokenSource
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseClient: clients.NewBaseClient(baseURL),
	}
}

// SetTokenSource wires the session's token into outgoing requests.
func (c *Client) SetTokenSource(ts TokenSource) {
	c.tokens = ts
}

// getJSON issues a GET and decodes the response into out.
func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	c.refreshAuthHeader()
	body, err := c.Get(ctx, endpoint)
	if err != nil {
		return err
	}
	return decode(body, out)
}

// sendJSON issues a POST or PUT with a JSON body and decodes the response
// into out when out is non-nil.
func (c *Client) sendJSON(ctx context.Context, method, endpoint string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}

	c.refreshAuthHeader()
	c.SetHeader(ContentTypeHeader, ContentTypeJSON)

	var body []byte
	switch method {
	case http.MethodPost:
		body, err = c.Post(ctx, endpoint, bytes.NewReader(payload))
	case http.MethodPut:
		body, err = c.Put(ctx, endpoint, bytes.NewReader(payload))
	default:
		return fmt.Errorf("unsupported method %s", method)
	}
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decode(body, out)
}

func (c *Client) deleteResource(ctx context.Context, endpoint string) error {
	c.refreshAuthHeader()
	_, err := c.Delete(ctx, endpoint)
	return err
}

func (c *Client) refreshAuthHeader() {
	if c.tokens == nil {
		return
	}
	if token := c.tokens.Token(); token != "" {
		c.SetHeader(AuthorizationHeader, "Bearer "+token)
	} else {
		c.RemoveHeader(AuthorizationHeader)
	}
}

func decode(body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		return apierror.Wrap(apierror.KindServer, "failed to decode response body", err)
	}
	return nil
}

// requireID rejects empty identifiers before they turn into malformed URLs.
func requireID(id, entity string) error {
	if id == "" {
		return apierror.Newf(apierror.KindValidation, "%s id must not be empty", entity)
	}
	return nil
}

// opErrorf keeps the transport error's kind and cause but swaps in the
// operation-specific message the dashboard shows in notifications.
func opErrorf(err error, format string, args ...any) error {
	return apierror.Wrap(apierror.KindOf(err), fmt.Sprintf(format, args...), err)
}

// authErrorf preserves the server-provided message on auth failures and
// falls back to a generic one for everything else.
func authErrorf(err error, fallback string) error {
	var apiErr *apierror.Error
	if errors.As(err, &apiErr) && apiErr.Kind != apierror.KindNetwork && apiErr.Detail != "" {
		return err
	}
	return apierror.Wrap(apierror.KindOf(err), fallback, err)
}
