package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/paclead/platform-backend/internal/domain"
)

type WhatsAppSessionRepository struct {
	pool *pgxpool.Pool
}

func NewWhatsAppSessionRepository(pool *pgxpool.Pool) *WhatsAppSessionRepository {
	return &WhatsAppSessionRepository{pool: pool}
}

func (r *WhatsAppSessionRepository) GetByScope(ctx context.Context, scopeID string) (*domain.WhatsAppSession, error) {
	query := `
		SELECT scope_id, token, subdomain, COALESCE(phone, ''),
		       COALESCE(status, ''), COALESCE(qr_code, ''), created_at, updated_at
		FROM whatsapp_sessions
		WHERE scope_id = $1`

	row := r.pool.QueryRow(ctx, query, scopeID)
	s, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *WhatsAppSessionRepository) Upsert(ctx context.Context, session *domain.WhatsAppSession) (*domain.WhatsAppSession, error) {
	query := `
		INSERT INTO whatsapp_sessions
		  (scope_id, token, subdomain, phone, status, qr_code)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6)
		ON CONFLICT (scope_id) DO UPDATE SET
		  token      = EXCLUDED.token,
		  subdomain  = EXCLUDED.subdomain,
		  phone      = EXCLUDED.phone,
		  status     = EXCLUDED.status,
		  qr_code    = EXCLUDED.qr_code,
		  updated_at = NOW()
		RETURNING scope_id, token, subdomain, COALESCE(phone, ''),
		          COALESCE(status, ''), COALESCE(qr_code, ''), created_at, updated_at`

	row := r.pool.QueryRow(ctx, query,
		session.ScopeID, session.Token, session.Subdomain, session.Phone, session.Status, session.QRCode)
	return scanSession(row)
}

func scanSession(row pgx.Row) (*domain.WhatsAppSession, error) {
	var s domain.WhatsAppSession
	err := row.Scan(&s.ScopeID, &s.Token, &s.Subdomain, &s.Phone, &s.Status, &s.QRCode, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan whatsapp session: %w", err)
	}
	return &s, nil
}
