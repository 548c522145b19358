// Package gateway is the REST client the state machines use to sync local
// state to the ChannelMagic API. Every call returns a SyncResult instead of
// an error the caller could forget: local state stays authoritative and is
// never rolled back on a failed sync.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrNotConfigured is returned as a SyncResult reason when a state machine
// has no gateway client wired in.
var ErrNotConfigured = errors.New("gateway: not configured")

// SyncResult is the outcome of one best-effort sync. Either ID is set, or Err
// carries the reason the write did not reach the server.
type SyncResult struct {
	ID  string
	Err error
}

// Ok reports whether the sync reached the server.
func (r SyncResult) Ok() bool {
	return r.Err == nil
}

func ok(id string) SyncResult {
	return SyncResult{ID: id}
}

func fail(format string, args ...interface{}) SyncResult {
	return SyncResult{Err: fmt.Errorf(format, args...)}
}

// Client talks to the ChannelMagic REST gateway with a session token.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// CreateChannelRequest is the body for POST /api/channels.
type CreateChannelRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// CreateVideoRequest is the body for POST /api/videos.
type CreateVideoRequest struct {
	Title     string   `json:"title"`
	Topic     string   `json:"topic"`
	Status    string   `json:"status"`
	Platforms []string `json:"platforms"`
}

type idResponse struct {
	ID string `json:"id"`
}

// CreateChannel posts a channel record and returns the server-assigned id.
func (c *Client) CreateChannel(ctx context.Context, req CreateChannelRequest) SyncResult {
	return c.post(ctx, "/api/channels", req)
}

// CreateVideo posts a project summary and returns the server-assigned id.
func (c *Client) CreateVideo(ctx context.Context, req CreateVideoRequest) SyncResult {
	return c.post(ctx, "/api/videos", req)
}

// UpdateVideo puts a partial update against an existing video record.
func (c *Client) UpdateVideo(ctx context.Context, id string, fields map[string]interface{}) SyncResult {
	data, err := json.Marshal(fields)
	if err != nil {
		return fail("failed to marshal update: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut,
		c.baseURL+"/api/videos/"+id, bytes.NewReader(data))
	if err != nil {
		return fail("failed to create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fail("update request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return fail("update rejected (%d): %s", resp.StatusCode, string(body))
	}
	return ok(id)
}

func (c *Client) post(ctx context.Context, path string, body interface{}) SyncResult {
	data, err := json.Marshal(body)
	if err != nil {
		return fail("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fail("failed to create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fail("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return fail("save rejected (%d): %s", resp.StatusCode, string(respBody))
	}

	var result idResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fail("failed to decode response: %w", err)
	}
	return ok(result.ID)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}
