package repository

import (
	"context"

	"github.com/paclead/platform-backend/internal/domain"
)

type ProductRepository interface {
	ListByScope(ctx context.Context, scopeID string) ([]*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
}
