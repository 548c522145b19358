// Package wizard implements the 6-step channel setup state machine. It holds
// the questionnaire answers, gates forward navigation through CanProceed, and
// saves the finished channel to the gateway as a best-effort sync.
//
// The machine itself never skips or orders steps; the caller owns navigation
// and consults CanProceed before advancing.
package wizard

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"channelmagic/internal/gateway"
	"channelmagic/internal/state"
	"channelmagic/models"
)

// TotalSteps is the fixed length of the wizard flow.
const TotalSteps = 6

// State is the persisted wizard state.
type State struct {
	CurrentStep int                    `json:"currentStep"`
	Channel     models.ChannelData     `json:"channel"`
	Strategy    models.ContentStrategy `json:"strategy"`
	Platforms   []models.Platform      `json:"platforms"`
	IsComplete  bool                   `json:"isComplete"`
	ChannelID   string                 `json:"channelId"`
}

func initialState() State {
	return State{CurrentStep: 1}
}

// Machine is the wizard state machine. Every mutation persists through the
// injected store; a failed save is logged and in-memory state stays
// authoritative for the session.
type Machine struct {
	store state.Store
	gw    *gateway.Client
	state State
}

// New loads wizard state from the store, starting fresh at step 1 when
// nothing was saved yet. gw may be nil for a purely local machine.
func New(store state.Store, gw *gateway.Client) *Machine {
	m := &Machine{store: store, gw: gw}
	if err := store.Load(&m.state); err != nil {
		m.state = initialState()
	}
	return m
}

func (m *Machine) State() State { return m.state }

func (m *Machine) SetCurrentStep(step int) {
	m.state.CurrentStep = step
	m.persist()
}

// ChannelUpdate is a partial update of the channel answers. Nil fields are
// left untouched; a pointer to an empty string clears the field.
type ChannelUpdate struct {
	Name           *string
	Niche          *models.Niche
	TargetAudience *string
	CustomNiche    *string
}

// SetChannel merges the partial into the channel data. No validation happens
// here; CanProceed is the only gate.
func (m *Machine) SetChannel(update ChannelUpdate) {
	if update.Name != nil {
		m.state.Channel.Name = *update.Name
	}
	if update.Niche != nil {
		m.state.Channel.Niche = update.Niche
	}
	if update.TargetAudience != nil {
		m.state.Channel.TargetAudience = *update.TargetAudience
	}
	if update.CustomNiche != nil {
		m.state.Channel.CustomNiche = *update.CustomNiche
	}
	m.persist()
}

// SetStrategy shallow-merges non-zero fields into the content strategy.
func (m *Machine) SetStrategy(data models.ContentStrategy) {
	if data.Topics != nil {
		m.state.Strategy.Topics = data.Topics
	}
	if data.Style != nil {
		m.state.Strategy.Style = data.Style
	}
	if data.Frequency != nil {
		m.state.Strategy.Frequency = data.Frequency
	}
	m.persist()
}

func (m *Machine) AddTopic(topic string) {
	m.state.Strategy.Topics = append(m.state.Strategy.Topics, topic)
	m.persist()
}

func (m *Machine) SetPlatforms(platforms []models.Platform) {
	m.state.Platforms = platforms
	m.persist()
}

// TogglePlatform adds the platform to the selection, or removes it when
// already present.
func (m *Machine) TogglePlatform(platform models.Platform) {
	for i, p := range m.state.Platforms {
		if p == platform {
			m.state.Platforms = append(m.state.Platforms[:i], m.state.Platforms[i+1:]...)
			m.persist()
			return
		}
	}
	m.state.Platforms = append(m.state.Platforms, platform)
	m.persist()
}

func (m *Machine) SetComplete(complete bool) {
	m.state.IsComplete = complete
	m.persist()
}

func (m *Machine) SetChannelID(id string) {
	m.state.ChannelID = id
	m.persist()
}

// CanProceed reports whether the given step's requirements are met:
// step 1 needs a name of trimmed length >= 2 and a chosen niche, step 2 needs
// at least one topic plus style and frequency, step 3 needs at least one
// platform. Steps 4-6 are always passable; their gating, if any, lives in the
// calling layer.
func (m *Machine) CanProceed(step int) bool {
	switch step {
	case 1:
		return len(strings.TrimSpace(m.state.Channel.Name)) >= 2 &&
			m.state.Channel.Niche != nil
	case 2:
		return len(m.state.Strategy.Topics) > 0 &&
			m.state.Strategy.Style != nil &&
			m.state.Strategy.Frequency != nil
	case 3:
		return len(m.state.Platforms) > 0
	case 4, 5, 6:
		return true
	default:
		return false
	}
}

// Progress returns the wizard completion percentage for the current step,
// rounded to the nearest whole percent.
func (m *Machine) Progress() int {
	return (m.state.CurrentStep*100 + TotalSteps/2) / TotalSteps
}

// SaveChannel posts the channel record to the gateway. On success the
// server-assigned id is stored; on failure the result carries the reason and
// local state is untouched.
func (m *Machine) SaveChannel(ctx context.Context) gateway.SyncResult {
	if m.gw == nil {
		return gateway.SyncResult{Err: gateway.ErrNotConfigured}
	}

	var description *string
	if m.state.Channel.TargetAudience != "" {
		description = &m.state.Channel.TargetAudience
	}

	result := m.gw.CreateChannel(ctx, gateway.CreateChannelRequest{
		Name:        m.state.Channel.Name,
		Description: description,
	})
	if result.Ok() {
		m.state.ChannelID = result.ID
		m.persist()
	} else {
		logrus.WithError(result.Err).Warn("failed to save channel")
	}
	return result
}

// Reset restores the initial empty state.
func (m *Machine) Reset() {
	m.state = initialState()
	m.persist()
}

func (m *Machine) persist() {
	if err := m.store.Save(&m.state); err != nil {
		logrus.WithError(err).Warn("failed to persist wizard state")
	}
}
