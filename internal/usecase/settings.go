package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/paclead/platform-backend/internal/domain"
	"github.com/paclead/platform-backend/internal/repository"
)

type SettingsUsecase struct {
	repo repository.AgentSettingsRepository
}

func NewSettingsUsecase(repo repository.AgentSettingsRepository) *SettingsUsecase {
	return &SettingsUsecase{repo: repo}
}

type UpdateSettingsInput struct {
	AgentName          string
	CommunicationStyle string
	Sector             string
	ProfileType        string
	Description        string
	FAQ                json.RawMessage
	Instructions       string
	NotifyWhatsApp     bool
	WhatsAppNumber     string
	SendSite           bool
	SiteURL            string
	SendProduct        bool
}

// Get returns the tenant's settings, or (nil, nil) when none were saved yet
// so the boundary can answer with an empty object.
func (u *SettingsUsecase) Get(ctx context.Context, scopeID string) (*domain.AgentSettings, error) {
	settings, err := u.repo.GetByScope(ctx, scopeID)
	if err != nil {
		if errors.Is(err, domain.ErrSettingsNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get agent settings: %w", err)
	}
	return settings, nil
}

// Update replaces the tenant's settings wholesale via an atomic upsert.
func (u *SettingsUsecase) Update(ctx context.Context, scopeID string, input UpdateSettingsInput) (*domain.AgentSettings, error) {
	settings, err := u.repo.Upsert(ctx, &domain.AgentSettings{
		ScopeID:            scopeID,
		AgentName:          input.AgentName,
		CommunicationStyle: input.CommunicationStyle,
		Sector:             input.Sector,
		ProfileType:        input.ProfileType,
		Description:        input.Description,
		FAQ:                input.FAQ,
		Instructions:       input.Instructions,
		NotifyWhatsApp:     input.NotifyWhatsApp,
		WhatsAppNumber:     input.WhatsAppNumber,
		SendSite:           input.SendSite,
		SiteURL:            input.SiteURL,
		SendProduct:        input.SendProduct,
	})
	if err != nil {
		return nil, fmt.Errorf("upsert agent settings: %w", err)
	}
	return settings, nil
}
