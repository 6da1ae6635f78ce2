package usecase

import (
	"context"
	"fmt"

	"github.com/paclead/platform-backend/internal/domain"
	"github.com/paclead/platform-backend/internal/repository"
)

type ProductUsecase struct {
	repo repository.ProductRepository
}

func NewProductUsecase(repo repository.ProductRepository) *ProductUsecase {
	return &ProductUsecase{repo: repo}
}

type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	ImageURL    string
}

func (u *ProductUsecase) List(ctx context.Context, scopeID string) ([]*domain.Product, error) {
	products, err := u.repo.ListByScope(ctx, scopeID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (u *ProductUsecase) Create(ctx context.Context, scopeID string, input CreateProductInput) (*domain.Product, error) {
	product, err := u.repo.Create(ctx, &domain.Product{
		ScopeID:     scopeID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
	})
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}
