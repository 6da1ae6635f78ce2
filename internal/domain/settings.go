package domain

import (
	"encoding/json"
	"errors"
	"time"
)

var ErrSettingsNotFound = errors.New("agent settings not found")

// AgentSettings is the per-tenant sales agent configuration.
// One row per scope; writes are upserts.
type AgentSettings struct {
	ScopeID            string
	AgentName          string
	CommunicationStyle string
	Sector             string
	ProfileType        string
	Description        string
	FAQ                json.RawMessage // free-form list/object, stored as JSONB
	Instructions       string
	NotifyWhatsApp     bool
	WhatsAppNumber     string
	SendSite           bool
	SiteURL            string
	SendProduct        bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
