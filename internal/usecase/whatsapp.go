package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/paclead/platform-backend/internal/domain"
	"github.com/paclead/platform-backend/internal/repository"
	"github.com/paclead/platform-backend/internal/uazapi"
)

type WhatsAppUsecase struct {
	sessions   repository.WhatsAppSessionRepository
	client     uazapi.Client
	base       string
	adminToken string
}

func NewWhatsAppUsecase(sessions repository.WhatsAppSessionRepository, client uazapi.Client, base, adminToken string) *WhatsAppUsecase {
	return &WhatsAppUsecase{
		sessions:   sessions,
		client:     client,
		base:       base,
		adminToken: adminToken,
	}
}

type ConnectOutput struct {
	QRCode   string
	Instance string
}

// Connect bootstraps a UAZAPI instance for the tenant and stores the session.
// The shared admin token and base URL are persisted with the session so that
// later status checks reuse exactly the credentials connect used.
func (u *WhatsAppUsecase) Connect(ctx context.Context, scopeID, instanceName, phone string) (*ConnectOutput, error) {
	if instanceName == "" {
		instanceName = "inst_" + scopeID
	}

	result, err := u.client.Connect(ctx, u.base, u.adminToken, instanceName)
	if err != nil {
		return nil, err
	}
	qr := result.QR()

	_, err = u.sessions.Upsert(ctx, &domain.WhatsAppSession{
		ScopeID:   scopeID,
		Token:     u.adminToken,
		Subdomain: u.base,
		Phone:     phone,
		Status:    "connecting",
		QRCode:    qr,
	})
	if err != nil {
		return nil, fmt.Errorf("store whatsapp session: %w", err)
	}

	return &ConnectOutput{QRCode: qr, Instance: instanceName}, nil
}

// Status polls UAZAPI for the tenant's instance and returns the upstream
// payload verbatim. domain.ErrSessionNotFound when connect was never called.
func (u *WhatsAppUsecase) Status(ctx context.Context, scopeID string) (json.RawMessage, error) {
	session, err := u.sessions.GetByScope(ctx, scopeID)
	if err != nil {
		return nil, err
	}

	return u.client.Status(ctx, session.Subdomain, session.Token)
}
