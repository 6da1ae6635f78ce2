package repository

import (
	"context"

	"github.com/paclead/platform-backend/internal/domain"
)

type AgentSettingsRepository interface {
	// GetByScope returns domain.ErrSettingsNotFound when the tenant has not
	// configured the agent yet.
	GetByScope(ctx context.Context, scopeID string) (*domain.AgentSettings, error)
	// Upsert inserts or fully replaces the tenant's settings in one atomic
	// conflict-resolving write keyed by scope_id.
	Upsert(ctx context.Context, settings *domain.AgentSettings) (*domain.AgentSettings, error)
}
