package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/paclead/platform-backend/internal/domain"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) ListByScope(ctx context.Context, scopeID string) ([]*domain.Product, error) {
	query := `
		SELECT id, scope_id, name, COALESCE(description, ''),
		       COALESCE(price, 0), COALESCE(image_url, ''),
		       created_at, updated_at
		FROM products
		WHERE scope_id = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, scopeID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := []*domain.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		INSERT INTO products (scope_id, name, description, price, image_url)
		VALUES ($1, $2, NULLIF($3, ''), $4, NULLIF($5, ''))
		RETURNING id, scope_id, name, COALESCE(description, ''),
		          COALESCE(price, 0), COALESCE(image_url, ''),
		          created_at, updated_at`

	row := r.pool.QueryRow(ctx, query,
		product.ScopeID, product.Name, product.Description, product.Price, product.ImageURL)
	return scanProduct(row)
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.ScopeID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("scan product: %w", err)
	}
	return &p, nil
}
