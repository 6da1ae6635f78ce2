package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/paclead/platform-backend/internal/domain"
	"github.com/paclead/platform-backend/internal/uazapi"
	"github.com/paclead/platform-backend/internal/usecase"
)

type fakeSessionRepo struct {
	getByScope func(ctx context.Context, scopeID string) (*domain.WhatsAppSession, error)
	upsert     func(ctx context.Context, session *domain.WhatsAppSession) (*domain.WhatsAppSession, error)
}

func (r *fakeSessionRepo) GetByScope(ctx context.Context, scopeID string) (*domain.WhatsAppSession, error) {
	return r.getByScope(ctx, scopeID)
}

func (r *fakeSessionRepo) Upsert(ctx context.Context, session *domain.WhatsAppSession) (*domain.WhatsAppSession, error) {
	return r.upsert(ctx, session)
}

type fakeUazapiClient struct {
	connect func(ctx context.Context, baseURL, token, instance string) (*uazapi.ConnectResult, error)
	status  func(ctx context.Context, baseURL, token string) (json.RawMessage, error)
}

func (c *fakeUazapiClient) Connect(ctx context.Context, baseURL, token, instance string) (*uazapi.ConnectResult, error) {
	return c.connect(ctx, baseURL, token, instance)
}

func (c *fakeUazapiClient) Status(ctx context.Context, baseURL, token string) (json.RawMessage, error) {
	return c.status(ctx, baseURL, token)
}

const (
	testBase       = "https://wa.test.local"
	testAdminToken = "admin-token"
	testScope      = "12345678000199"
)

func TestConnect_DefaultsInstanceNameToScope(t *testing.T) {
	var gotInstance string
	client := &fakeUazapiClient{
		connect: func(_ context.Context, _, _, instance string) (*uazapi.ConnectResult, error) {
			gotInstance = instance
			return &uazapi.ConnectResult{QRCode: "qr-data"}, nil
		},
	}
	sessions := &fakeSessionRepo{
		upsert: func(_ context.Context, s *domain.WhatsAppSession) (*domain.WhatsAppSession, error) {
			return s, nil
		},
	}

	uc := usecase.NewWhatsAppUsecase(sessions, client, testBase, testAdminToken)
	out, err := uc.Connect(context.Background(), testScope, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotInstance != "inst_"+testScope {
		t.Errorf("instance = %q, want %q", gotInstance, "inst_"+testScope)
	}
	if out.Instance != "inst_"+testScope || out.QRCode != "qr-data" {
		t.Errorf("output = %+v", out)
	}
}

func TestConnect_StoresAdminCredentialsInSession(t *testing.T) {
	// The shared admin token and base URL are persisted on purpose; status
	// checks replay them instead of any per-tenant credential.
	var stored *domain.WhatsAppSession
	client := &fakeUazapiClient{
		connect: func(_ context.Context, _, _, _ string) (*uazapi.ConnectResult, error) {
			return &uazapi.ConnectResult{QRCodeAlt: "qr-alt"}, nil
		},
	}
	sessions := &fakeSessionRepo{
		upsert: func(_ context.Context, s *domain.WhatsAppSession) (*domain.WhatsAppSession, error) {
			stored = s
			return s, nil
		},
	}

	uc := usecase.NewWhatsAppUsecase(sessions, client, testBase, testAdminToken)
	if _, err := uc.Connect(context.Background(), testScope, "inst_custom", "+5511999990000"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stored.Token != testAdminToken || stored.Subdomain != testBase {
		t.Errorf("session credentials = %q/%q, want admin token and base", stored.Token, stored.Subdomain)
	}
	if stored.Status != "connecting" {
		t.Errorf("status = %q, want connecting", stored.Status)
	}
	if stored.QRCode != "qr-alt" {
		t.Errorf("qr = %q, want fallback key value", stored.QRCode)
	}
}

func TestConnect_UpstreamError_Propagates(t *testing.T) {
	upstream := &uazapi.UpstreamError{StatusCode: 500, Body: "boom"}
	client := &fakeUazapiClient{
		connect: func(_ context.Context, _, _, _ string) (*uazapi.ConnectResult, error) {
			return nil, upstream
		},
	}
	sessions := &fakeSessionRepo{
		upsert: func(_ context.Context, _ *domain.WhatsAppSession) (*domain.WhatsAppSession, error) {
			t.Fatal("session must not be stored when connect fails")
			return nil, nil
		},
	}

	uc := usecase.NewWhatsAppUsecase(sessions, client, testBase, testAdminToken)
	_, err := uc.Connect(context.Background(), testScope, "", "")

	var ue *uazapi.UpstreamError
	if !errors.As(err, &ue) || ue.Body != "boom" {
		t.Errorf("err = %v, want the upstream error", err)
	}
}

func TestStatus_NoSession_ReturnsNotFound(t *testing.T) {
	sessions := &fakeSessionRepo{
		getByScope: func(_ context.Context, _ string) (*domain.WhatsAppSession, error) {
			return nil, domain.ErrSessionNotFound
		},
	}
	uc := usecase.NewWhatsAppUsecase(sessions, &fakeUazapiClient{}, testBase, testAdminToken)

	_, err := uc.Status(context.Background(), testScope)
	if !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestStatus_ReusesStoredSessionCredentials(t *testing.T) {
	sessions := &fakeSessionRepo{
		getByScope: func(_ context.Context, _ string) (*domain.WhatsAppSession, error) {
			return &domain.WhatsAppSession{
				ScopeID:   testScope,
				Token:     "stored-token",
				Subdomain: "https://stored.base",
			}, nil
		},
	}
	var gotBase, gotToken string
	client := &fakeUazapiClient{
		status: func(_ context.Context, baseURL, token string) (json.RawMessage, error) {
			gotBase, gotToken = baseURL, token
			return json.RawMessage(`{"status":"connected"}`), nil
		},
	}

	uc := usecase.NewWhatsAppUsecase(sessions, client, testBase, testAdminToken)
	body, err := uc.Status(context.Background(), testScope)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotBase != "https://stored.base" || gotToken != "stored-token" {
		t.Errorf("status used %q/%q, want the stored session credentials", gotBase, gotToken)
	}
	if string(body) != `{"status":"connected"}` {
		t.Errorf("body = %s, want upstream payload verbatim", body)
	}
}
