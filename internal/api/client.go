// Package api holds the resource services that talk to the tourneyman
// backend. Every call attaches credentials from an explicitly passed
// session value and asserts the status code the endpoint documents.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/ianwestfall/tourneyman-web/internal/session"
)

// Config configures the shared backend client.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client is the shared HTTP layer under the resource services.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: httpClient,
	}
}

// StatusError reports a response whose status code differs from the
// operation's documented expectation.
type StatusError struct {
	Method string
	Path   string
	Want   int
	Got    int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: expected status %d, got %d", e.Method, e.Path, e.Want, e.Got)
}

// do performs one backend call: build the request, attach the bearer token
// when the session has one, assert the expected status, and decode into out
// when provided. Transport errors propagate unchanged; there is no retry.
func (c *Client) do(ctx context.Context, sess session.Session, method, path string, query url.Values, body any, wantStatus int, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	if sess.Token != nil && sess.Token.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+sess.Token.AccessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return &StatusError{Method: method, Path: path, Want: wantStatus, Got: resp.StatusCode}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}
