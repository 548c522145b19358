package models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectStatus is the creation-stage enum for a content project. Intended
// usage moves it forward only, but SetStatus performs no transition check; the
// current value is always exactly what was last written.
type ProjectStatus string

const (
	StatusDraft     ProjectStatus = "draft"
	StatusScript    ProjectStatus = "script"
	StatusVideo     ProjectStatus = "video"
	StatusThumbnail ProjectStatus = "thumbnail"
	StatusReview    ProjectStatus = "review"
	StatusReady     ProjectStatus = "ready"
	StatusPublished ProjectStatus = "published"
)

// Script is the structured script attached to a project once generated or
// manually entered.
type Script struct {
	Hook         string   `json:"hook"`
	Intro        string   `json:"intro"`
	MainPoints   []string `json:"mainPoints"`
	CallToAction string   `json:"callToAction"`
	Outro        string   `json:"outro"`
	FullText     string   `json:"fullText"`
}

// PlatformContent is the per-platform slice of a project: one entry per
// selected platform, created empty and filled in stage by stage.
type PlatformContent struct {
	Platform     Platform `json:"platform"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Hashtags     []string `json:"hashtags"`
	ThumbnailURL string   `json:"thumbnailUrl,omitempty"`
	VideoURL     string   `json:"videoUrl,omitempty"`
	Published    bool     `json:"published"`
	PublishedAt  string   `json:"publishedAt,omitempty"`
}

// Project is the in-progress content project as tracked on the client side.
// ID is a client-generated identifier, distinct from the server-assigned
// video record id.
type Project struct {
	ID              string            `json:"id"`
	Topic           string            `json:"topic"`
	Status          ProjectStatus     `json:"status"`
	Script          *Script           `json:"script"`
	PlatformContent []PlatformContent `json:"platformContent"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// Video represents the structure of a video record in the database.
type Video struct {
	ID        uuid.UUID  `json:"id,omitempty"`
	UserID    uuid.UUID  `json:"user_id,omitempty"`
	ChannelID *uuid.UUID `json:"channel_id,omitempty"` // Nullable foreign key
	Title     string     `json:"title"`
	Topic     string     `json:"topic"`
	Status    string     `json:"status"`
	Platforms []string   `json:"platforms,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
