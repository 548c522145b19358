package openrouter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"channelmagic/internal/prompts"
)

func newTestClient(serverURL string) *Client {
	c := NewClient("sk-test")
	c.baseURL = serverURL
	return c
}

func TestGenerateScript(t *testing.T) {
	var gotReq completionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.Equal(t, "https://channelmagic.vercel.app", r.Header.Get("HTTP-Referer"))
		assert.Equal(t, "ChannelMagic", r.Header.Get("X-Title"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "HOOK: watch this"}},
			},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	script, err := client.GenerateScript(context.Background(), prompts.ScriptParams{
		Topic:    "go generics",
		Style:    "educational",
		Duration: "short",
		Platform: "youtube",
		Locale:   "en",
	})

	require.NoError(t, err)
	assert.Equal(t, "HOOK: watch this", script)
	assert.Equal(t, "anthropic/claude-3-haiku", gotReq.Model)
	assert.Equal(t, 2000, gotReq.MaxTokens)
	require.Len(t, gotReq.Messages, 1)
	assert.Equal(t, "user", gotReq.Messages[0].Role)
	assert.Contains(t, gotReq.Messages[0].Content, "go generics")
}

func TestGenerateScriptProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":"insufficient credits"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.GenerateScript(context.Background(), prompts.ScriptParams{Topic: "x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient credits")
}

func TestGenerateScriptNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	script, err := client.GenerateScript(context.Background(), prompts.ScriptParams{Topic: "x"})

	require.NoError(t, err)
	assert.Empty(t, script)
}

func TestValidateKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]string{{"id": "a"}, {"id": "b"}, {"id": "c"}},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	count, err := client.ValidateKey(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestValidateKeyRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.ValidateKey(context.Background())
	require.Error(t, err)
}
