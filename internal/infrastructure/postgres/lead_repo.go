package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/paclead/platform-backend/internal/domain"
)

type LeadRepository struct {
	pool *pgxpool.Pool
}

func NewLeadRepository(pool *pgxpool.Pool) *LeadRepository {
	return &LeadRepository{pool: pool}
}

func (r *LeadRepository) ListByScope(ctx context.Context, scopeID string) ([]*domain.Lead, error) {
	query := `
		SELECT id, scope_id, COALESCE(name, ''), COALESCE(phone, ''),
		       COALESCE(status, ''), COALESCE(classification, ''),
		       created_at, updated_at
		FROM leads
		WHERE scope_id = $1
		ORDER BY updated_at DESC, created_at DESC`

	rows, err := r.pool.Query(ctx, query, scopeID)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	leads := []*domain.Lead{}
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}
	return leads, rows.Err()
}

func scanLead(row pgx.Row) (*domain.Lead, error) {
	var l domain.Lead
	err := row.Scan(&l.ID, &l.ScopeID, &l.Name, &l.Phone, &l.Status, &l.Classification, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("scan lead: %w", err)
	}
	return &l, nil
}
