// Package twinapi is the HTTP/JSON transport to the remote digital-twin
// service. It attaches the session bearer token, classifies every outcome
// into the shared error taxonomy, and triggers session teardown on an
// authentication failure from any endpoint.
package twinapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/digitaltwin/dashboard-core/internal/core/domain"
	"github.com/digitaltwin/dashboard-core/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

// Client issues authenticated requests against the remote service.
type Client struct {
	baseURL       string
	http          *http.Client
	sessions      ports.SessionStore
	log           zerolog.Logger
	onAuthFailure func()
}

// NewClient creates a Client rooted at baseURL (e.g. "http://host:5000/api").
func NewClient(baseURL string, timeout time.Duration, sessions ports.SessionStore, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: timeout},
		sessions: sessions,
		log:      log,
	}
}

// OnAuthFailure registers the session-teardown hook invoked whenever any
// call observes an HTTP 401. The hook runs before the error is returned, so
// callers already see the torn-down session.
func (c *Client) OnAuthFailure(fn func()) {
	c.onAuthFailure = fn
}

// do performs one JSON round trip. A bearer header is attached when a
// session token is held; otherwise the request goes out unauthenticated.
func (c *Client) do(ctx context.Context, method, endpoint string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &domain.RequestError{Endpoint: endpoint, Message: err.Error()}
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return &domain.RequestError{Endpoint: endpoint, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.sessions.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("endpoint", endpoint).Msg("request failed")
		return &domain.RequestError{Endpoint: endpoint, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.log.Warn().Str("endpoint", endpoint).Msg("authentication rejected, tearing down session")
		if c.onAuthFailure != nil {
			c.onAuthFailure()
		}
		return domain.ErrAuthFailed
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error().Err(err).Str("endpoint", endpoint).Msg("reading response failed")
		return &domain.RequestError{Endpoint: endpoint, Message: err.Error()}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg := serverMessage(raw, resp.StatusCode)
		c.log.Error().Int("status", resp.StatusCode).Str("endpoint", endpoint).Str("message", msg).Msg("request rejected")
		return &domain.RequestError{Endpoint: endpoint, Message: msg}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return &domain.RequestError{Endpoint: endpoint, Message: "malformed response: " + err.Error()}
		}
	}
	return nil
}

// serverMessage extracts the service's error field, falling back to a
// status-derived message.
func serverMessage(raw []byte, status int) string {
	var envelope struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(raw, &envelope) == nil && envelope.Error != "" {
		return envelope.Error
	}
	return fmt.Sprintf("service returned status %d", status)
}
