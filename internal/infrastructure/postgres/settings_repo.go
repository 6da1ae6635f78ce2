package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/paclead/platform-backend/internal/domain"
)

type AgentSettingsRepository struct {
	pool *pgxpool.Pool
}

func NewAgentSettingsRepository(pool *pgxpool.Pool) *AgentSettingsRepository {
	return &AgentSettingsRepository{pool: pool}
}

const settingsColumns = `scope_id, COALESCE(agent_name, ''), COALESCE(communication_style, ''),
	COALESCE(sector, ''), COALESCE(profile_type, ''), COALESCE(description, ''),
	faq, COALESCE(instructions, ''), COALESCE(notify_whatsapp, FALSE),
	COALESCE(whatsapp_number, ''), COALESCE(send_site, FALSE), COALESCE(site_url, ''),
	COALESCE(send_product, FALSE), created_at, updated_at`

func (r *AgentSettingsRepository) GetByScope(ctx context.Context, scopeID string) (*domain.AgentSettings, error) {
	query := `SELECT ` + settingsColumns + ` FROM agent_settings WHERE scope_id = $1`

	row := r.pool.QueryRow(ctx, query, scopeID)
	s, err := scanSettings(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSettingsNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *AgentSettingsRepository) Upsert(ctx context.Context, settings *domain.AgentSettings) (*domain.AgentSettings, error) {
	query := `
		INSERT INTO agent_settings
		  (scope_id, agent_name, communication_style, sector, profile_type, description,
		   faq, instructions, notify_whatsapp, whatsapp_number, send_site, site_url, send_product)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (scope_id) DO UPDATE SET
		   agent_name          = EXCLUDED.agent_name,
		   communication_style = EXCLUDED.communication_style,
		   sector              = EXCLUDED.sector,
		   profile_type        = EXCLUDED.profile_type,
		   description         = EXCLUDED.description,
		   faq                 = EXCLUDED.faq,
		   instructions        = EXCLUDED.instructions,
		   notify_whatsapp     = EXCLUDED.notify_whatsapp,
		   whatsapp_number     = EXCLUDED.whatsapp_number,
		   send_site           = EXCLUDED.send_site,
		   site_url            = EXCLUDED.site_url,
		   send_product        = EXCLUDED.send_product,
		   updated_at          = NOW()
		RETURNING ` + settingsColumns

	row := r.pool.QueryRow(ctx, query,
		settings.ScopeID,
		settings.AgentName,
		settings.CommunicationStyle,
		settings.Sector,
		settings.ProfileType,
		settings.Description,
		settings.FAQ,
		settings.Instructions,
		settings.NotifyWhatsApp,
		settings.WhatsAppNumber,
		settings.SendSite,
		settings.SiteURL,
		settings.SendProduct,
	)
	return scanSettings(row)
}

func scanSettings(row pgx.Row) (*domain.AgentSettings, error) {
	var s domain.AgentSettings
	err := row.Scan(
		&s.ScopeID, &s.AgentName, &s.CommunicationStyle, &s.Sector, &s.ProfileType,
		&s.Description, &s.FAQ, &s.Instructions, &s.NotifyWhatsApp, &s.WhatsAppNumber,
		&s.SendSite, &s.SiteURL, &s.SendProduct, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan agent settings: %w", err)
	}
	return &s, nil
}
