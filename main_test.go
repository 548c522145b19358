package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"channelmagic/config"
)

// fakeResolver accepts exactly one token and resolves it to a fixed user.
type fakeResolver struct {
	token  string
	userID uuid.UUID
}

func (r fakeResolver) ResolveUser(token string) (uuid.UUID, error) {
	if token != r.token {
		return uuid.Nil, errors.New("invalid token")
	}
	return r.userID, nil
}

func testApp(t *testing.T) (*fiber.App, string) {
	t.Helper()
	config.InitLogger("error")

	resolver := fakeResolver{token: "valid-token", userID: uuid.New()}
	return NewApp(resolver), "valid-token"
}

func request(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()
	return body
}

func TestHealth(t *testing.T) {
	app, _ := testApp(t)

	resp := request(t, app, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "ok", body["status"])
}

func TestProtectedEndpointsRejectMissingToken(t *testing.T) {
	app, _ := testApp(t)

	endpoints := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/channels"},
		{http.MethodPost, "/api/channels"},
		{http.MethodGet, "/api/channels/some-id"},
		{http.MethodPut, "/api/channels/some-id"},
		{http.MethodDelete, "/api/channels/some-id"},
		{http.MethodGet, "/api/videos"},
		{http.MethodPost, "/api/videos"},
		{http.MethodGet, "/api/videos/some-id"},
		{http.MethodPut, "/api/videos/some-id"},
		{http.MethodDelete, "/api/videos/some-id"},
		{http.MethodPost, "/api/generate/script"},
		{http.MethodPost, "/api/generate/hashtags"},
		{http.MethodPost, "/api/generate/video"},
		{http.MethodGet, "/api/video/status"},
		{http.MethodPost, "/api/validate/openrouter"},
	}

	for _, e := range endpoints {
		t.Run(e.method+" "+e.path, func(t *testing.T) {
			resp := request(t, app, e.method, e.path, "", nil)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

			body := decodeBody(t, resp)
			assert.Equal(t, map[string]interface{}{"error": "Unauthorized"}, body)
		})
	}
}

func TestProtectedEndpointsRejectInvalidToken(t *testing.T) {
	app, _ := testApp(t)

	resp := request(t, app, http.MethodPost, "/api/generate/hashtags", "wrong-token", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Unauthorized", body["error"])
}

func TestGenerateHashtags(t *testing.T) {
	app, token := testApp(t)

	resp := request(t, app, http.MethodPost, "/api/generate/hashtags", token, map[string]string{
		"topic":    "golang tutorial",
		"platform": "youtube",
		"locale":   "en",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "youtube", body["platform"])

	tags, ok := body["hashtags"].([]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, tags)
	assert.LessOrEqual(t, len(tags), 15)
	assert.Equal(t, float64(len(tags)), body["count"])
	assert.Contains(t, tags, "YouTubeShorts")
	assert.Contains(t, tags, "Golang")
}

func TestGenerateHashtagsValidation(t *testing.T) {
	app, token := testApp(t)

	tests := []struct {
		name    string
		body    map[string]string
		wantErr string
	}{
		{"missing topic", map[string]string{"platform": "youtube"}, "Topic is required"},
		{"missing platform", map[string]string{"topic": "x"}, "Platform is required"},
		{"bad platform", map[string]string{"topic": "x", "platform": "vimeo"},
			"Invalid platform. Must be one of: youtube, tiktok, instagram"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := request(t, app, http.MethodPost, "/api/generate/hashtags", token, tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			body := decodeBody(t, resp)
			assert.Equal(t, tt.wantErr, body["error"])
		})
	}
}

func TestGenerateScriptValidation(t *testing.T) {
	app, token := testApp(t)

	valid := map[string]string{
		"apiKey":   "sk-test",
		"topic":    "go routines",
		"style":    "educational",
		"duration": "short",
		"platform": "youtube",
		"locale":   "en",
	}
	override := func(key, value string) map[string]string {
		body := make(map[string]string, len(valid))
		for k, v := range valid {
			body[k] = v
		}
		if value == "" {
			delete(body, key)
		} else {
			body[key] = value
		}
		return body
	}

	tests := []struct {
		name    string
		body    map[string]string
		wantErr string
	}{
		{"missing key", override("apiKey", ""), "OpenRouter API key required"},
		{"missing topic", override("topic", ""), "Missing required field: topic"},
		{"missing locale", override("locale", ""), "Missing required field: locale"},
		{"bad style", override("style", "dramatic"),
			"Invalid style. Must be one of: educational, entertaining, inspirational"},
		{"bad duration", override("duration", "medium"),
			"Invalid duration. Must be one of: short, long"},
		{"bad platform", override("platform", "vimeo"),
			"Invalid platform. Must be one of: youtube, tiktok, instagram"},
		{"bad locale", override("locale", "fr"),
			"Invalid locale. Must be one of: de, en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := request(t, app, http.MethodPost, "/api/generate/script", token, tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			body := decodeBody(t, resp)
			assert.Equal(t, tt.wantErr, body["error"])
		})
	}
}

func TestGenerateVideoValidation(t *testing.T) {
	app, token := testApp(t)

	resp := request(t, app, http.MethodPost, "/api/generate/video", token, map[string]string{
		"script": "hello",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "HeyGen API key required", decodeBody(t, resp)["error"])

	resp = request(t, app, http.MethodPost, "/api/generate/video", token, map[string]string{
		"apiKey": "hg-test",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Script is required", decodeBody(t, resp)["error"])
}

func TestVideoStatusValidation(t *testing.T) {
	app, token := testApp(t)

	resp := request(t, app, http.MethodGet, "/api/video/status", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "HeyGen API key required", decodeBody(t, resp)["error"])

	resp = request(t, app, http.MethodGet, "/api/video/status?apiKey=hg-test", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Video ID required", decodeBody(t, resp)["error"])
}

func TestValidateHeyGenIsPublic(t *testing.T) {
	app, _ := testApp(t)

	// No token: the endpoint is reachable and rejects on the missing key, not
	// on auth.
	resp := request(t, app, http.MethodPost, "/api/validate/heygen", "", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, false, body["valid"])
	assert.Equal(t, "API key required", body["error"])
}

func TestValidateOpenRouterMissingKey(t *testing.T) {
	app, token := testApp(t)

	resp := request(t, app, http.MethodPost, "/api/validate/openrouter", token, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, false, body["valid"])
	assert.Equal(t, "API key required", body["error"])
}

func TestLogoutWithoutToken(t *testing.T) {
	app, _ := testApp(t)

	resp := request(t, app, http.MethodPost, "/api/auth/logout", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, decodeBody(t, resp)["success"])
}
