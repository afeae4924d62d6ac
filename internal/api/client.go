// ABOUTME: HTTP client core: request building, bearer auth, JSON and envelope decode
// ABOUTME: Mutations carry an Idempotency-Key header; every call is context-bound

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client talks to the marketplace backend. Safe for concurrent use.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	logger  *slog.Logger
}

// New creates a client for the given backend origin. token may be empty
// for unauthenticated reads; timeout <= 0 falls back to 15s so a hung
// backend can never hang the console indefinitely.
func New(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: timeout},
		logger:  slog.Default().With("component", "api"),
	}
}

// newRequest builds a request with auth and content headers set. Mutating
// methods get a fresh Idempotency-Key; the backend may ignore it.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if method != http.MethodGet {
		req.Header.Set("Idempotency-Key", uuid.New().String())
	}
	return req, nil
}

// do executes the request and returns the body for 2xx responses. Non-2xx
// responses become *APIError, with the backend's "error" message when the
// body carries one.
func (c *Client) do(req *http.Request) ([]byte, error) {
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	c.logger.Debug("backend call",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errBody struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &errBody) == nil {
			apiErr.Message = errBody.Error
		}
		return nil, apiErr
	}

	return data, nil
}

// get fetches path and decodes the payload into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}
	data, err := c.do(req)
	if err != nil {
		return err
	}
	return decodePayload(data, out)
}

// sendJSON sends a JSON body with the given method. out may be nil when
// the caller does not need the response payload.
func (c *Client) sendJSON(ctx context.Context, method, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}
	req, err := c.newRequest(ctx, method, path, bytes.NewReader(payload), "application/json")
	if err != nil {
		return err
	}
	data, err := c.do(req)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decodePayload(data, out)
}

// delete issues a DELETE and discards any response payload.
func (c *Client) delete(ctx context.Context, path string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, path, nil, "")
	if err != nil {
		return err
	}
	_, err = c.do(req)
	return err
}

// envelope covers the backend's two list-wrapping conventions.
type envelope struct {
	Data json.RawMessage `json:"data"`
	Msg  json.RawMessage `json:"msg"`
}

// decodePayload unmarshals a response body into out, unwrapping a "data"
// or "msg" envelope when the bare payload does not fit.
func decodePayload(data []byte, out any) error {
	directErr := json.Unmarshal(data, out)
	if directErr == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("parsing response: %w", directErr)
	}
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("parsing response data field: %w", err)
		}
		return nil
	}
	if len(env.Msg) > 0 {
		if err := json.Unmarshal(env.Msg, out); err != nil {
			return fmt.Errorf("parsing response msg field: %w", err)
		}
		return nil
	}
	return fmt.Errorf("parsing response: %w", directErr)
}
