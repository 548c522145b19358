// Package heygen is a thin client for the HeyGen avatar-video API: create a
// render job, poll its status, and probe the account quota.
package heygen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultBaseURL = "https://api.heygen.com"
	defaultTimeout = 30 * time.Second

	// DefaultPollInterval is the fixed delay between status checks. There is
	// no backoff and no attempt cap; a stuck render polls until the caller
	// cancels the context.
	DefaultPollInterval = 5 * time.Second
)

// Video render statuses reported by the provider.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
}

// VideoParams describes one avatar render. Only Script is required.
type VideoParams struct {
	Script          string
	AvatarID        string
	VoiceID         string
	BackgroundColor string
}

// VideoStatus is the provider's view of a render job.
type VideoStatus struct {
	Status   string `json:"status"`
	VideoURL string `json:"video_url,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Terminal reports whether the render has finished, successfully or not.
func (s VideoStatus) Terminal() bool {
	return s.Status == StatusCompleted || s.Status == StatusFailed
}

type createResponse struct {
	Data struct {
		VideoID string `json:"video_id"`
	} `json:"data"`
}

type statusResponse struct {
	Data VideoStatus `json:"data"`
}

type quotaResponse struct {
	Data struct {
		RemainingQuota int `json:"remaining_quota"`
	} `json:"data"`
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		baseURL: defaultBaseURL,
	}
}

// CreateVideo submits a render job and returns the provider's job id.
func (c *Client) CreateVideo(ctx context.Context, params VideoParams) (string, error) {
	avatarID := params.AvatarID
	if avatarID == "" {
		avatarID = "default"
	}
	voiceID := params.VoiceID
	if voiceID == "" {
		voiceID = "default"
	}
	background := params.BackgroundColor
	if background == "" {
		background = "#000000"
	}

	payload := map[string]interface{}{
		"video_inputs": []map[string]interface{}{
			{
				"character": map[string]string{
					"type":      "avatar",
					"avatar_id": avatarID,
				},
				"voice": map[string]string{
					"type":       "text",
					"input_text": params.Script,
					"voice_id":   voiceID,
				},
			},
		},
		"dimension": map[string]int{
			"width":  1920,
			"height": 1080,
		},
		"background_color": background,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v2/video/generate", bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("video creation failed: %s", string(body))
	}

	var result createResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	return result.Data.VideoID, nil
}

// GetStatus fetches the current status of a render job.
func (c *Client) GetStatus(ctx context.Context, videoID string) (*VideoStatus, error) {
	endpoint := c.baseURL + "/v1/video_status.get?video_id=" + url.QueryEscape(videoID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("failed to get video status: %s", string(body))
	}

	var result statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &result.Data, nil
}

// PollStatus checks the render job at a fixed interval until it reaches a
// terminal status or ctx is cancelled. A zero interval uses
// DefaultPollInterval.
func (c *Client) PollStatus(ctx context.Context, videoID string, interval time.Duration) (*VideoStatus, error) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		status, err := c.GetStatus(ctx, videoID)
		if err != nil {
			return nil, err
		}
		if status.Terminal() {
			return status, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// RemainingQuota fetches the credits left on the account.
func (c *Client) RemainingQuota(ctx context.Context) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/v2/user/remaining_quota", nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("invalid API key")
	}

	var result quotaResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("failed to decode response: %w", err)
	}
	return result.Data.RemainingQuota, nil
}

// ValidateKey reports whether the client's key can access the account.
func (c *Client) ValidateKey(ctx context.Context) (int, error) {
	return c.RemainingQuota(ctx)
}
