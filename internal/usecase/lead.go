package usecase

import (
	"context"
	"fmt"

	"github.com/paclead/platform-backend/internal/domain"
	"github.com/paclead/platform-backend/internal/repository"
)

type LeadUsecase struct {
	repo repository.LeadRepository
}

func NewLeadUsecase(repo repository.LeadRepository) *LeadUsecase {
	return &LeadUsecase{repo: repo}
}

func (u *LeadUsecase) List(ctx context.Context, scopeID string) ([]*domain.Lead, error) {
	leads, err := u.repo.ListByScope(ctx, scopeID)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	return leads, nil
}
