package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/arenadesk/arenadesk/go/internal/apierror"
)

// BaseClient is a thin wrapper around http.Client shared by the typed API
// clients. It owns the base URL, default headers and the status-to-error
// mapping; it knows nothing about entities. Safe for concurrent use: header
// writes are synchronized with the per-request header snapshot, so callers
// can fan requests out across goroutines.
type BaseClient struct {
	baseURL string
	client  *http.Client

	mu      sync.RWMutex
	headers map[string]string
}

func NewBaseClient(baseURL string) *BaseClient {
	return &BaseClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		headers: make(map[string]string),
	}
}

func (c *BaseClient) SetHeader(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.headers[key] = value
}

func (c *BaseClient) RemoveHeader(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.headers, key)
}

func (c *BaseClient) SetTimeout(timeout time.Duration) {
	c.client.Timeout = timeout
}

// MakeRequest performs a single round trip and returns the raw response
// body. Non-2xx responses and transport failures come back as
// *apierror.Error; the caller layers its operation-specific message on top.
func (c *BaseClient) MakeRequest(ctx context.Context, method, endpoint string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	c.mu.RLock()
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}
	c.mu.RUnlock()

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, apierror.Wrap(apierror.KindNetwork, "request failed", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierror.Wrap(apierror.KindNetwork, "failed to read response body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail := serverMessage(responseBody)
		if detail == "" {
			detail = fmt.Sprintf("server returned status %d", resp.StatusCode)
		}
		return nil, apierror.New(kindForStatus(resp.StatusCode), detail)
	}

	return responseBody, nil
}

func (c *BaseClient) Get(ctx context.Context, endpoint string) ([]byte, error) {
	return c.MakeRequest(ctx, http.MethodGet, endpoint, nil)
}

func (c *BaseClient) Post(ctx context.Context, endpoint string, body io.Reader) ([]byte, error) {
	return c.MakeRequest(ctx, http.MethodPost, endpoint, body)
}

func (c *BaseClient) Put(ctx context.Context, endpoint string, body io.Reader) ([]byte, error) {
	return c.MakeRequest(ctx, http.MethodPut, endpoint, body)
}

func (c *BaseClient) Delete(ctx context.Context, endpoint string) ([]byte, error) {
	return c.MakeRequest(ctx, http.MethodDelete, endpoint, nil)
}

func kindForStatus(status int) apierror.Kind {
	switch {
	case status == http.StatusNotFound:
		return apierror.KindNotFound
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return apierror.KindUnauthorized
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return apierror.KindValidation
	default:
		return apierror.KindServer
	}
}

// serverMessage extracts the "message" field the API uses in error bodies.
func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Message
}
