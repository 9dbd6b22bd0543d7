// Package client calls the health API the way the navigation frontend does.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sims-navigation/backend/internal/domain"
)

// HealthPath is where the server mounts the health endpoint.
const HealthPath = "/api/v1/health"

// maxErrorBody caps how much of a failed response is read for its detail.
const maxErrorBody = 64 << 10

// APIError is returned for any non-2xx response. It matches domain.ErrAPI
// under errors.Is.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string { return e.Message }

func (e *APIError) Unwrap() error { return domain.ErrAPI }

// HealthClient queries the health endpoint of a running API.
// The base URL is injected from config so tests can point to a local server.
type HealthClient struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration) *HealthClient {
	return &HealthClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Health fetches and decodes the liveness payload.
func (c *HealthClient) Health(ctx context.Context) (*domain.HealthStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+HealthPath, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp)
	}

	var status domain.HealthStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &status, nil
}

// Check succeeds only when the API answers with the expected status value.
func (c *HealthClient) Check(ctx context.Context) error {
	status, err := c.Health(ctx)
	if err != nil {
		return err
	}
	if !status.IsWorking() {
		return fmt.Errorf("%w: %q", domain.ErrUnhealthy, status.Status)
	}
	return nil
}

// newAPIError prefers the server's "detail" message over the bare status code.
func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("API error: %d", resp.StatusCode),
	}

	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&body); err == nil && body.Detail != "" {
		apiErr.Message = body.Detail
	}
	return apiErr
}
