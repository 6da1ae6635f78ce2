package repository

import (
	"context"

	"github.com/paclead/platform-backend/internal/domain"
)

type WhatsAppSessionRepository interface {
	// GetByScope returns domain.ErrSessionNotFound when the tenant never
	// connected an instance.
	GetByScope(ctx context.Context, scopeID string) (*domain.WhatsAppSession, error)
	// Upsert inserts or replaces the tenant's session, atomic on scope_id.
	Upsert(ctx context.Context, session *domain.WhatsAppSession) (*domain.WhatsAppSession, error)
}
