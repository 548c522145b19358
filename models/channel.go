package models

import (
	"time"

	"github.com/google/uuid"
)

// Niche is one of the fixed channel categories offered by the wizard.
type Niche string

const (
	NicheFitness   Niche = "fitness"
	NicheFinance   Niche = "finance"
	NicheGaming    Niche = "gaming"
	NicheCooking   Niche = "cooking"
	NicheTech      Niche = "tech"
	NicheLifestyle Niche = "lifestyle"
	NicheEducation Niche = "education"
	NicheMusic     Niche = "music"
	NicheBusiness  Niche = "business"
	NicheTravel    Niche = "travel"
	NicheOther     Niche = "other"
)

// ContentStyle is the tone chosen for generated scripts.
type ContentStyle string

const (
	StyleEducational   ContentStyle = "educational"
	StyleEntertaining  ContentStyle = "entertaining"
	StyleInspirational ContentStyle = "inspirational"
)

// ValidContentStyle reports whether s is a supported content style.
func ValidContentStyle(s ContentStyle) bool {
	switch s {
	case StyleEducational, StyleEntertaining, StyleInspirational:
		return true
	}
	return false
}

// Frequency is the intended publishing cadence.
type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	Frequency23Week Frequency = "2-3x-week"
	FrequencyWeekly Frequency = "weekly"
)

// ChannelData holds the wizard's step 1 answers. Niche is nil until chosen;
// CustomNiche is only meaningful when Niche is "other".
type ChannelData struct {
	Name           string `json:"name"`
	Niche          *Niche `json:"niche"`
	TargetAudience string `json:"targetAudience"`
	CustomNiche    string `json:"customNiche,omitempty"`
}

// ContentStrategy holds the wizard's step 2 answers. Topic order is insertion
// order and meaningful for display.
type ContentStrategy struct {
	Topics    []string      `json:"topics"`
	Style     *ContentStyle `json:"style"`
	Frequency *Frequency    `json:"frequency"`
}

// Channel represents the structure of a channel record in the database.
type Channel struct {
	ID          uuid.UUID `json:"id,omitempty"`
	UserID      uuid.UUID `json:"user_id,omitempty"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"` // Use a pointer for nullable TEXT fields
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
