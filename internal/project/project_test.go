package project

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"channelmagic/internal/gateway"
	"channelmagic/internal/state"
	"channelmagic/models"
)

func newMachine(t *testing.T) *Machine {
	t.Helper()
	return New(state.NewMemStore(), nil)
}

func TestCreateProject(t *testing.T) {
	m := newMachine(t)
	p := m.CreateProject("go generics explained", []models.Platform{
		models.PlatformYouTube, models.PlatformTikTok,
	})

	require.NotNil(t, p)
	assert.True(t, strings.HasPrefix(p.ID, "proj_"))
	assert.Equal(t, "go generics explained", p.Topic)
	assert.Equal(t, models.StatusDraft, p.Status)
	require.Len(t, p.PlatformContent, 2)

	for _, row := range p.PlatformContent {
		assert.Empty(t, row.Title)
		assert.NotNil(t, row.Hashtags)
		assert.Empty(t, row.Hashtags)
		assert.False(t, row.Published)
	}
	assert.Equal(t, models.PlatformYouTube, p.PlatformContent[0].Platform)
	assert.Equal(t, models.PlatformTikTok, p.PlatformContent[1].Platform)
}

func TestCreateProjectReplacesPreviousState(t *testing.T) {
	m := newMachine(t)
	m.CreateProject("first", []models.Platform{models.PlatformYouTube})
	m.SetDIYChecklistItem(ChecklistScript, true)
	m.state.VideoID = "vid-old"

	m.CreateProject("second", []models.Platform{models.PlatformTikTok})

	assert.Equal(t, "second", m.Current().Topic)
	assert.Empty(t, m.VideoID())
	assert.False(t, m.State().DIYChecklist.ScriptDone)
}

func TestSetScriptMovesToScriptStatus(t *testing.T) {
	m := newMachine(t)
	m.CreateProject("topic", []models.Platform{models.PlatformYouTube})

	m.SetScript(&models.Script{FullText: "hello world"})

	require.NotNil(t, m.Current().Script)
	assert.Equal(t, "hello world", m.Current().Script.FullText)
	assert.Equal(t, models.StatusScript, m.Current().Status)
}

func TestUpdatePlatformContent(t *testing.T) {
	m := newMachine(t)
	m.CreateProject("topic", []models.Platform{models.PlatformYouTube, models.PlatformTikTok})

	title := "Go in 5 Minutes"
	published := true
	m.UpdatePlatformContent(models.PlatformYouTube, ContentUpdate{
		Title:     &title,
		Hashtags:  []string{"#golang", "#coding"},
		Published: &published,
	})

	youtube := m.Current().PlatformContent[0]
	assert.Equal(t, "Go in 5 Minutes", youtube.Title)
	assert.Equal(t, []string{"#golang", "#coding"}, youtube.Hashtags)
	assert.True(t, youtube.Published)

	tiktok := m.Current().PlatformContent[1]
	assert.Empty(t, tiktok.Title)
	assert.Empty(t, tiktok.Hashtags)
}

func TestUpdatePlatformContentAbsentPlatformIsNoOp(t *testing.T) {
	m := newMachine(t)
	m.CreateProject("topic", []models.Platform{models.PlatformYouTube})
	before := m.Current().UpdatedAt

	title := "ignored"
	m.UpdatePlatformContent(models.PlatformInstagram, ContentUpdate{Title: &title})

	assert.Equal(t, before, m.Current().UpdatedAt)
	assert.Empty(t, m.Current().PlatformContent[0].Title)
}

func TestUpdateProject(t *testing.T) {
	m := newMachine(t)
	m.CreateProject("old topic", []models.Platform{models.PlatformYouTube})
	before := m.Current().UpdatedAt

	topic := "new topic"
	status := models.StatusReview
	m.UpdateProject(ProjectUpdate{
		Topic:  &topic,
		Status: &status,
		Script: &models.Script{FullText: "merged"},
	})

	p := m.Current()
	assert.Equal(t, "new topic", p.Topic)
	assert.Equal(t, models.StatusReview, p.Status)
	require.NotNil(t, p.Script)
	assert.Equal(t, "merged", p.Script.FullText)
	assert.False(t, p.UpdatedAt.Before(before))

	// Nil fields leave the merged values alone.
	content := []models.PlatformContent{{Platform: models.PlatformTikTok, Hashtags: []string{}}}
	m.UpdateProject(ProjectUpdate{PlatformContent: content})
	assert.Equal(t, "new topic", m.Current().Topic)
	assert.Equal(t, models.StatusReview, m.Current().Status)
	assert.Equal(t, content, m.Current().PlatformContent)
}

func TestUpdateProjectWithoutProject(t *testing.T) {
	m := newMachine(t)
	topic := "ignored"
	m.UpdateProject(ProjectUpdate{Topic: &topic})
	assert.Nil(t, m.Current())
}

func TestSetStatusIsUnconditional(t *testing.T) {
	m := newMachine(t)
	m.CreateProject("topic", []models.Platform{models.PlatformYouTube})

	m.SetStatus(models.StatusReady)
	assert.Equal(t, models.StatusReady, m.Current().Status)

	// A backward write sticks.
	m.SetStatus(models.StatusDraft)
	assert.Equal(t, models.StatusDraft, m.Current().Status)
}

func TestMutationsWithoutProjectAreNoOps(t *testing.T) {
	m := newMachine(t)

	m.SetScript(&models.Script{FullText: "x"})
	m.SetStatus(models.StatusReady)
	m.SetTopic("x")
	title := "x"
	m.UpdatePlatformContent(models.PlatformYouTube, ContentUpdate{Title: &title})

	assert.Nil(t, m.Current())
}

func TestDIYChecklist(t *testing.T) {
	m := newMachine(t)

	m.SetDIYChecklistItem(ChecklistScript, true)
	m.SetDIYChecklistItem(ChecklistVideo, true)
	m.SetDIYChecklistItem(ChecklistItem("unknown"), true)

	c := m.State().DIYChecklist
	assert.True(t, c.ScriptDone)
	assert.False(t, c.VoiceoverDone)
	assert.True(t, c.VideoDone)
	assert.False(t, c.ThumbnailDone)

	m.SetDIYChecklistItem(ChecklistScript, false)
	assert.False(t, m.State().DIYChecklist.ScriptDone)
}

func TestPersistenceAcrossInstances(t *testing.T) {
	store := state.NewMemStore()

	first := New(store, nil)
	first.CreateProject("topic", []models.Platform{models.PlatformYouTube})
	first.SetStatus(models.StatusVideo)

	second := New(store, nil)
	require.NotNil(t, second.Current())
	assert.Equal(t, "topic", second.Current().Topic)
	assert.Equal(t, models.StatusVideo, second.Current().Status)
}

func TestSaveToDatabase(t *testing.T) {
	var gotReq gateway.CreateVideoRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/videos", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"id": "vid-7"})
	}))
	defer server.Close()

	m := New(state.NewMemStore(), gateway.NewClient(server.URL, "tok"))
	m.CreateProject("go routines", []models.Platform{models.PlatformYouTube, models.PlatformTikTok})

	res := m.SaveToDatabase(context.Background())

	require.True(t, res.Ok())
	assert.Equal(t, "vid-7", m.VideoID())
	assert.Equal(t, "go routines", gotReq.Title)
	assert.Equal(t, "draft", gotReq.Status)
	assert.Equal(t, []string{"youtube", "tiktok"}, gotReq.Platforms)
}

func TestSaveToDatabaseWithoutProject(t *testing.T) {
	m := newMachine(t)
	res := m.SaveToDatabase(context.Background())
	require.False(t, res.Ok())
}

func TestSaveToDatabaseFailureKeepsLocalState(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	m := New(state.NewMemStore(), gateway.NewClient(server.URL, "tok"))
	m.CreateProject("topic", []models.Platform{models.PlatformYouTube})

	res := m.SaveToDatabase(context.Background())

	require.False(t, res.Ok())
	assert.Empty(t, m.VideoID())
	require.NotNil(t, m.Current())
	assert.Equal(t, "topic", m.Current().Topic)
}

func TestUpdateInDatabase(t *testing.T) {
	var gotPath string
	var gotFields map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotFields))
		json.NewEncoder(w).Encode(map[string]string{"id": "vid-7"})
	}))
	defer server.Close()

	m := New(state.NewMemStore(), gateway.NewClient(server.URL, "tok"))
	m.CreateProject("topic", []models.Platform{models.PlatformYouTube})
	m.state.VideoID = "vid-7"

	res := m.UpdateInDatabase(context.Background(), map[string]interface{}{"status": "published"})

	require.True(t, res.Ok())
	assert.Equal(t, "/api/videos/vid-7", gotPath)
	assert.Equal(t, "published", gotFields["status"])
}

func TestUpdateInDatabaseBeforeSave(t *testing.T) {
	m := newMachine(t)
	m.CreateProject("topic", []models.Platform{models.PlatformYouTube})

	res := m.UpdateInDatabase(context.Background(), map[string]interface{}{"status": "ready"})
	require.False(t, res.Ok())
}

func TestClearCurrentProject(t *testing.T) {
	m := newMachine(t)
	m.CreateProject("topic", []models.Platform{models.PlatformYouTube})
	m.SetDIYChecklistItem(ChecklistScript, true)

	m.ClearCurrentProject()

	assert.Nil(t, m.Current())
	assert.Empty(t, m.VideoID())
	assert.False(t, m.State().DIYChecklist.ScriptDone)
}
