package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/paclead/platform-backend/internal/domain"
	"github.com/paclead/platform-backend/internal/transport/http/middleware"
	"github.com/paclead/platform-backend/internal/usecase"
)

type settingsUsecaser interface {
	Get(ctx context.Context, scopeID string) (*domain.AgentSettings, error)
	Update(ctx context.Context, scopeID string, input usecase.UpdateSettingsInput) (*domain.AgentSettings, error)
}

type SettingsHandler struct {
	settingsUsecase settingsUsecaser
	logger          *slog.Logger
}

func NewSettingsHandler(settingsUsecase settingsUsecaser, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{settingsUsecase: settingsUsecase, logger: logger.With("component", "settings_handler")}
}

type settingsRequest struct {
	AgentName          string          `json:"agent_name"`
	CommunicationStyle string          `json:"communication_style"`
	Sector             string          `json:"sector"`
	ProfileType        string          `json:"profile_type"`
	Description        string          `json:"description"`
	FAQ                json.RawMessage `json:"faq"`
	Instructions       string          `json:"instructions"`
	NotifyWhatsApp     bool            `json:"notify_whatsapp"`
	WhatsAppNumber     string          `json:"whatsapp_number"`
	SendSite           bool            `json:"send_site"`
	SiteURL            string          `json:"site_url"`
	SendProduct        bool            `json:"send_product"`
}

type settingsResponse struct {
	AgentName          string          `json:"agent_name"`
	CommunicationStyle string          `json:"communication_style"`
	Sector             string          `json:"sector"`
	ProfileType        string          `json:"profile_type"`
	Description        string          `json:"description"`
	FAQ                json.RawMessage `json:"faq,omitempty"`
	Instructions       string          `json:"instructions"`
	NotifyWhatsApp     bool            `json:"notify_whatsapp"`
	WhatsAppNumber     string          `json:"whatsapp_number"`
	SendSite           bool            `json:"send_site"`
	SiteURL            string          `json:"site_url"`
	SendProduct        bool            `json:"send_product"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

func toSettingsResponse(s *domain.AgentSettings) settingsResponse {
	return settingsResponse{
		AgentName:          s.AgentName,
		CommunicationStyle: s.CommunicationStyle,
		Sector:             s.Sector,
		ProfileType:        s.ProfileType,
		Description:        s.Description,
		FAQ:                s.FAQ,
		Instructions:       s.Instructions,
		NotifyWhatsApp:     s.NotifyWhatsApp,
		WhatsAppNumber:     s.WhatsAppNumber,
		SendSite:           s.SendSite,
		SiteURL:            s.SiteURL,
		SendProduct:        s.SendProduct,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

// GET /api/settings/agent
// Returns an empty object when the tenant has not saved settings yet.
func (h *SettingsHandler) Get(c *gin.Context) {
	scopeID := c.GetString(middleware.CtxScopeID)

	settings, err := h.settingsUsecase.Get(c.Request.Context(), scopeID)
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "get agent settings", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}
	if settings == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	c.JSON(http.StatusOK, toSettingsResponse(settings))
}

// PUT /api/settings/agent
func (h *SettingsHandler) Update(c *gin.Context) {
	var req settingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	scopeID := c.GetString(middleware.CtxScopeID)
	settings, err := h.settingsUsecase.Update(c.Request.Context(), scopeID, usecase.UpdateSettingsInput{
		AgentName:          req.AgentName,
		CommunicationStyle: req.CommunicationStyle,
		Sector:             req.Sector,
		ProfileType:        req.ProfileType,
		Description:        req.Description,
		FAQ:                req.FAQ,
		Instructions:       req.Instructions,
		NotifyWhatsApp:     req.NotifyWhatsApp,
		WhatsAppNumber:     req.WhatsAppNumber,
		SendSite:           req.SendSite,
		SiteURL:            req.SiteURL,
		SendProduct:        req.SendProduct,
	})
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "update agent settings", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, toSettingsResponse(settings))
}
