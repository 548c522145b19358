// Package session holds app-level preferences: workflow mode, UI locale, and
// the session identifier. API keys are kept in memory only and never written
// through the persistence port.
package session

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"channelmagic/internal/state"
)

// Mode selects the workflow: automated generation or the manual checklist.
type Mode string

const (
	ModeAuto Mode = "auto"
	ModeDIY  Mode = "diy"
)

// Service names for API keys.
const (
	ServiceOpenRouter = "openrouter"
	ServiceHeyGen     = "heygen"
)

// State is the persisted portion of the preferences.
type State struct {
	Mode      Mode   `json:"mode"`
	Locale    string `json:"locale"`
	SessionID string `json:"sessionId"`
}

// Prefs is the preferences store. Mutations persist immediately; a failed
// save is logged and the in-memory state stays authoritative.
type Prefs struct {
	store state.Store
	state State

	apiKeys          map[string]string
	apiKeysValidated bool
}

// New loads preferences from the store, falling back to defaults (German
// locale, fresh session id) when nothing was saved yet.
func New(store state.Store) *Prefs {
	p := &Prefs{
		store:   store,
		apiKeys: make(map[string]string),
	}
	if err := store.Load(&p.state); err != nil {
		p.state = State{
			Locale:    "de",
			SessionID: newSessionID(),
		}
		p.persist()
	}
	return p
}

func (p *Prefs) State() State { return p.state }

func (p *Prefs) SetMode(mode Mode) {
	p.state.Mode = mode
	p.persist()
}

func (p *Prefs) SetLocale(locale string) {
	p.state.Locale = locale
	p.persist()
}

// SetAPIKey stores a provider key in memory and clears the validated flag,
// since a changed key has not been probed yet.
func (p *Prefs) SetAPIKey(service, key string) {
	p.apiKeys[service] = key
	p.apiKeysValidated = false
}

func (p *Prefs) APIKey(service string) string {
	return p.apiKeys[service]
}

func (p *Prefs) SetAPIKeysValidated(validated bool) {
	p.apiKeysValidated = validated
}

func (p *Prefs) APIKeysValidated() bool {
	return p.apiKeysValidated
}

// Reset restores defaults and generates a new session identifier.
func (p *Prefs) Reset() {
	p.state = State{
		Locale:    "de",
		SessionID: newSessionID(),
	}
	p.apiKeys = make(map[string]string)
	p.apiKeysValidated = false
	p.persist()
}

func (p *Prefs) persist() {
	if err := p.store.Save(&p.state); err != nil {
		logrus.WithError(err).Warn("failed to persist preferences")
	}
}

func newSessionID() string {
	return fmt.Sprintf("session_%d_%s", time.Now().UnixMilli(), randomSuffix(13))
}

const suffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

func randomSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = suffixAlphabet[rand.Intn(len(suffixAlphabet))]
	}
	return string(b)
}
