// Package api is the boundary component issuing CRUD calls against the
// remote user resource. Each operation is a single request/response round
// trip: no retries, no caching, one attempt per user-triggered action.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"userdeck/internal/user"
)

// DefaultBaseURL is the public sandbox users resource.
const DefaultBaseURL = "https://jsonplaceholder.typicode.com/users"

// DefaultTimeout bounds a single round trip.
const DefaultTimeout = 15 * time.Second

// RemoteError reports a failed round trip: either a non-success HTTP status
// or a transport failure.
type RemoteError struct {
	Op     string // "fetch", "create", "replace", "delete"
	Status int    // HTTP status, 0 on transport failure
	Err    error  // underlying transport error, nil on status failure
}

func (e *RemoteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s users: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s users: unexpected status %d", e.Op, e.Status)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// Client issues the four CRUD requests against the remote resource.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// Config holds client construction options.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Logger  *zap.Logger
}

// NewClient creates a client for the given resource URL. A nil logger
// disables request logging.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: cfg.Logger,
	}
}

// FetchAll retrieves the full user list.
func (c *Client) FetchAll(ctx context.Context) ([]user.User, error) {
	body, err := c.do(ctx, "fetch", http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, err
	}
	var users []user.User
	if err := json.Unmarshal(body, &users); err != nil {
		return nil, &RemoteError{Op: "fetch", Err: fmt.Errorf("decode response: %w", err)}
	}
	return users, nil
}

// Create posts a new user draft. The echoed record is returned as-is; the
// sandbox assigns a placeholder ID, so callers assign their own before
// committing the record locally.
func (c *Client) Create(ctx context.Context, draft user.Draft) (user.User, error) {
	payload, err := json.Marshal(draft)
	if err != nil {
		return user.User{}, &RemoteError{Op: "create", Err: err}
	}
	body, err := c.do(ctx, "create", http.MethodPost, c.baseURL, payload)
	if err != nil {
		return user.User{}, err
	}
	var created user.User
	if err := json.Unmarshal(body, &created); err != nil {
		return user.User{}, &RemoteError{Op: "create", Err: fmt.Errorf("decode response: %w", err)}
	}
	return created, nil
}

// Replace puts the full draft for an existing user. The response body is an
// acknowledgement only and is not used for the local merge.
func (c *Client) Replace(ctx context.Context, id int, draft user.Draft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return &RemoteError{Op: "replace", Err: err}
	}
	_, err = c.do(ctx, "replace", http.MethodPut, fmt.Sprintf("%s/%d", c.baseURL, id), payload)
	return err
}

// Delete removes a user on the remote resource. Acknowledgement only, no
// body required.
func (c *Client) Delete(ctx context.Context, id int) error {
	_, err := c.do(ctx, "delete", http.MethodDelete, fmt.Sprintf("%s/%d", c.baseURL, id), nil)
	return err
}

// do performs one round trip and returns the response body. Non-2xx statuses
// and transport errors both surface as *RemoteError.
func (c *Client) do(ctx context.Context, op, method, url string, payload []byte) ([]byte, error) {
	reqID := uuid.NewString()
	start := time.Now()

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, &RemoteError{Op: op, Err: err}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			zap.String("req", reqID),
			zap.String("op", op),
			zap.Error(err))
		return nil, &RemoteError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RemoteError{Op: op, Err: err}
	}

	c.logger.Debug("request complete",
		zap.String("req", reqID),
		zap.String("op", op),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RemoteError{Op: op, Status: resp.StatusCode}
	}
	return body, nil
}
