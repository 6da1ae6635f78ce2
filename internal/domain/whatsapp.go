package domain

import (
	"errors"
	"time"
)

var ErrSessionNotFound = errors.New("whatsapp session not found")

// WhatsAppSession records the UAZAPI instance bootstrapped for a tenant.
// Token and Subdomain are the credentials/base used at connect time and are
// reused verbatim by later status checks.
type WhatsAppSession struct {
	ScopeID   string
	Token     string
	Subdomain string
	Phone     string
	Status    string
	QRCode    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
