package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateChannelSuccess(t *testing.T) {
	var gotAuth string
	var gotBody CreateChannelRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/channels", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"id": "ch-123"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "tok-abc")
	res := client.CreateChannel(context.Background(), CreateChannelRequest{Name: "Tech Talk"})

	require.True(t, res.Ok())
	assert.Equal(t, "ch-123", res.ID)
	assert.Equal(t, "Bearer tok-abc", gotAuth)
	assert.Equal(t, "Tech Talk", gotBody.Name)
}

func TestCreateVideoRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Unauthorized"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	res := client.CreateVideo(context.Background(), CreateVideoRequest{
		Title:     "Go in 60 seconds",
		Topic:     "go basics",
		Status:    "draft",
		Platforms: []string{"youtube"},
	})

	require.False(t, res.Ok())
	assert.Contains(t, res.Err.Error(), "401")
}

func TestCreateChannelTransportError(t *testing.T) {
	// Point at a closed listener so the request fails at the transport.
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	client := NewClient(server.URL, "tok")
	res := client.CreateChannel(context.Background(), CreateChannelRequest{Name: "x"})

	require.False(t, res.Ok())
	assert.Empty(t, res.ID)
}

func TestUpdateVideo(t *testing.T) {
	var gotFields map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/videos/vid-9", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotFields))
		json.NewEncoder(w).Encode(map[string]string{"id": "vid-9"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "tok")
	res := client.UpdateVideo(context.Background(), "vid-9", map[string]interface{}{"status": "ready"})

	require.True(t, res.Ok())
	assert.Equal(t, "vid-9", res.ID)
	assert.Equal(t, "ready", gotFields["status"])
}

func TestNoTokenOmitsAuthorizationHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]string{"id": "ch-1"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	res := client.CreateChannel(context.Background(), CreateChannelRequest{Name: "x"})

	require.True(t, res.Ok())
	assert.Empty(t, gotAuth)
}
