package repository

import (
	"context"

	"github.com/paclead/platform-backend/internal/domain"
)

type LeadRepository interface {
	// ListByScope returns the tenant's leads, most recently touched first.
	ListByScope(ctx context.Context, scopeID string) ([]*domain.Lead, error)
}
