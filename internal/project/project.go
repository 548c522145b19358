// Package project implements the content-project state machine: one project
// taken from topic entry through script, video, thumbnail, review and export.
// The local copy is authoritative for the session; database writes are
// best-effort syncs whose failures never touch local state.
package project

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"channelmagic/internal/gateway"
	"channelmagic/internal/state"
	"channelmagic/models"
)

// ChecklistItem names one of the four DIY workflow flags.
type ChecklistItem string

const (
	ChecklistScript    ChecklistItem = "scriptDone"
	ChecklistVoiceover ChecklistItem = "voiceoverDone"
	ChecklistVideo     ChecklistItem = "videoDone"
	ChecklistThumbnail ChecklistItem = "thumbnailDone"
)

// Checklist tracks manual progress in DIY mode. It gates step progression in
// the calling layer only; the machine just records the flags.
type Checklist struct {
	ScriptDone    bool `json:"scriptDone"`
	VoiceoverDone bool `json:"voiceoverDone"`
	VideoDone     bool `json:"videoDone"`
	ThumbnailDone bool `json:"thumbnailDone"`
}

// State is the persisted project state. VideoID is the server-assigned record
// id, separate from the project's client-generated id.
type State struct {
	CurrentProject *models.Project `json:"currentProject"`
	VideoID        string          `json:"videoId"`
	DIYChecklist   Checklist       `json:"diyChecklist"`
}

// ProjectUpdate is a partial update of the current project. Nil fields are
// left untouched.
type ProjectUpdate struct {
	Topic           *string
	Status          *models.ProjectStatus
	Script          *models.Script
	PlatformContent []models.PlatformContent
}

// ContentUpdate is a partial update for one platform's content. Nil fields
// are left untouched.
type ContentUpdate struct {
	Title        *string
	Description  *string
	Hashtags     []string
	ThumbnailURL *string
	VideoURL     *string
	Published    *bool
	PublishedAt  *string
}

// Machine is the project state machine.
type Machine struct {
	store state.Store
	gw    *gateway.Client
	state State
}

// New loads project state from the store; absent state means no current
// project. gw may be nil for a purely local machine.
func New(store state.Store, gw *gateway.Client) *Machine {
	m := &Machine{store: store, gw: gw}
	if err := store.Load(&m.state); err != nil {
		m.state = State{}
	}
	return m
}

func (m *Machine) State() State { return m.state }

// Current returns the project being worked on, or nil.
func (m *Machine) Current() *models.Project {
	return m.state.CurrentProject
}

// VideoID returns the server-assigned record id, empty until the first
// successful save.
func (m *Machine) VideoID() string {
	return m.state.VideoID
}

// CreateProject replaces the current project with a fresh draft: one empty
// content row per platform, cleared checklist, no server id.
func (m *Machine) CreateProject(topic string, platforms []models.Platform) *models.Project {
	now := time.Now().UTC()
	content := make([]models.PlatformContent, 0, len(platforms))
	for _, p := range platforms {
		content = append(content, models.PlatformContent{
			Platform: p,
			Hashtags: []string{},
		})
	}

	project := &models.Project{
		ID:              newProjectID(),
		Topic:           topic,
		Status:          models.StatusDraft,
		PlatformContent: content,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	m.state = State{CurrentProject: project}
	m.persist()
	return project
}

// SetScript attaches the script and moves the project to script status.
func (m *Machine) SetScript(script *models.Script) {
	if m.state.CurrentProject == nil {
		return
	}
	m.state.CurrentProject.Script = script
	m.state.CurrentProject.Status = models.StatusScript
	m.touch()
	m.persist()
}

// UpdatePlatformContent merges the update into the matching platform row.
// A platform with no row is a no-op: the project, including its UpdatedAt,
// stays unchanged.
func (m *Machine) UpdatePlatformContent(platform models.Platform, update ContentUpdate) {
	if m.state.CurrentProject == nil {
		return
	}
	for i := range m.state.CurrentProject.PlatformContent {
		row := &m.state.CurrentProject.PlatformContent[i]
		if row.Platform != platform {
			continue
		}
		if update.Title != nil {
			row.Title = *update.Title
		}
		if update.Description != nil {
			row.Description = *update.Description
		}
		if update.Hashtags != nil {
			row.Hashtags = update.Hashtags
		}
		if update.ThumbnailURL != nil {
			row.ThumbnailURL = *update.ThumbnailURL
		}
		if update.VideoURL != nil {
			row.VideoURL = *update.VideoURL
		}
		if update.Published != nil {
			row.Published = *update.Published
		}
		if update.PublishedAt != nil {
			row.PublishedAt = *update.PublishedAt
		}
		m.touch()
		m.persist()
		return
	}
}

// SetStatus overwrites the project status unconditionally. There is no
// transition table: callers are responsible for only moving forward, and a
// backward write sticks.
func (m *Machine) SetStatus(status models.ProjectStatus) {
	if m.state.CurrentProject == nil {
		return
	}
	m.state.CurrentProject.Status = status
	m.touch()
	m.persist()
}

// UpdateProject merges the partial into the current project and refreshes
// UpdatedAt. Like SetStatus, a status carried here is written as-is.
func (m *Machine) UpdateProject(update ProjectUpdate) {
	if m.state.CurrentProject == nil {
		return
	}
	p := m.state.CurrentProject
	if update.Topic != nil {
		p.Topic = *update.Topic
	}
	if update.Status != nil {
		p.Status = *update.Status
	}
	if update.Script != nil {
		p.Script = update.Script
	}
	if update.PlatformContent != nil {
		p.PlatformContent = update.PlatformContent
	}
	m.touch()
	m.persist()
}

// SetTopic updates the topic of the current project.
func (m *Machine) SetTopic(topic string) {
	m.UpdateProject(ProjectUpdate{Topic: &topic})
}

// SetDIYChecklistItem toggles one of the fixed checklist flags. Unknown items
// are ignored.
func (m *Machine) SetDIYChecklistItem(item ChecklistItem, done bool) {
	switch item {
	case ChecklistScript:
		m.state.DIYChecklist.ScriptDone = done
	case ChecklistVoiceover:
		m.state.DIYChecklist.VoiceoverDone = done
	case ChecklistVideo:
		m.state.DIYChecklist.VideoDone = done
	case ChecklistThumbnail:
		m.state.DIYChecklist.ThumbnailDone = done
	default:
		return
	}
	m.persist()
}

// SaveToDatabase posts the project summary to the gateway on first save and
// stores the returned id as VideoID. Subsequent syncs go through
// UpdateInDatabase.
func (m *Machine) SaveToDatabase(ctx context.Context) gateway.SyncResult {
	if m.state.CurrentProject == nil {
		return gateway.SyncResult{Err: errNoProject}
	}
	if m.gw == nil {
		return gateway.SyncResult{Err: gateway.ErrNotConfigured}
	}

	project := m.state.CurrentProject
	platforms := make([]string, 0, len(project.PlatformContent))
	for _, row := range project.PlatformContent {
		platforms = append(platforms, string(row.Platform))
	}

	result := m.gw.CreateVideo(ctx, gateway.CreateVideoRequest{
		Title:     project.Topic,
		Topic:     project.Topic,
		Status:    string(project.Status),
		Platforms: platforms,
	})
	if result.Ok() {
		m.state.VideoID = result.ID
		m.persist()
	} else {
		logrus.WithError(result.Err).Warn("failed to save project")
	}
	return result
}

// UpdateInDatabase puts a partial update against the saved record. Without a
// VideoID there is nothing to update and the result says so.
func (m *Machine) UpdateInDatabase(ctx context.Context, fields map[string]interface{}) gateway.SyncResult {
	if m.state.VideoID == "" {
		return gateway.SyncResult{Err: errNotSaved}
	}
	if m.gw == nil {
		return gateway.SyncResult{Err: gateway.ErrNotConfigured}
	}

	result := m.gw.UpdateVideo(ctx, m.state.VideoID, fields)
	if !result.Ok() {
		logrus.WithError(result.Err).Warn("failed to update project")
	}
	return result
}

// ClearCurrentProject resets to no project and an empty checklist.
func (m *Machine) ClearCurrentProject() {
	m.state = State{}
	m.persist()
}

func (m *Machine) touch() {
	m.state.CurrentProject.UpdatedAt = time.Now().UTC()
}

func (m *Machine) persist() {
	if err := m.store.Save(&m.state); err != nil {
		logrus.WithError(err).Warn("failed to persist project state")
	}
}

var (
	errNoProject = fmt.Errorf("no current project")
	errNotSaved  = fmt.Errorf("project has not been saved yet")
)

func newProjectID() string {
	return fmt.Sprintf("proj_%d_%s", time.Now().UnixMilli(), randomSuffix(7))
}

const suffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

func randomSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = suffixAlphabet[rand.Intn(len(suffixAlphabet))]
	}
	return string(b)
}
