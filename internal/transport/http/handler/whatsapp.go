package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paclead/platform-backend/internal/domain"
	"github.com/paclead/platform-backend/internal/transport/http/middleware"
	"github.com/paclead/platform-backend/internal/uazapi"
	"github.com/paclead/platform-backend/internal/usecase"
)

type whatsAppUsecaser interface {
	Connect(ctx context.Context, scopeID, instanceName, phone string) (*usecase.ConnectOutput, error)
	Status(ctx context.Context, scopeID string) (json.RawMessage, error)
}

type WhatsAppHandler struct {
	whatsAppUsecase whatsAppUsecaser
	logger          *slog.Logger
}

func NewWhatsAppHandler(whatsAppUsecase whatsAppUsecaser, logger *slog.Logger) *WhatsAppHandler {
	return &WhatsAppHandler{whatsAppUsecase: whatsAppUsecase, logger: logger.With("component", "whatsapp_handler")}
}

type connectRequest struct {
	InstanceName string `json:"instance_name"`
	Phone        string `json:"phone"`
}

// POST /api/whatsapp/connect
// Both body fields are optional; an empty body is accepted.
func (h *WhatsAppHandler) Connect(c *gin.Context) {
	var req connectRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	scopeID := c.GetString(middleware.CtxScopeID)
	out, err := h.whatsAppUsecase.Connect(c.Request.Context(), scopeID, req.InstanceName, req.Phone)
	if err != nil {
		h.upstreamOr500(c, err, "whatsapp connect")
		return
	}

	c.JSON(http.StatusOK, gin.H{"qr_code": out.QRCode, "instance": out.Instance})
}

// GET /api/whatsapp/status
// Relays the upstream status payload untouched.
func (h *WhatsAppHandler) Status(c *gin.Context) {
	scopeID := c.GetString(middleware.CtxScopeID)

	body, err := h.whatsAppUsecase.Status(c.Request.Context(), scopeID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errSessionNotFound})
			return
		}
		h.upstreamOr500(c, err, "whatsapp status")
		return
	}

	c.Data(http.StatusOK, "application/json", body)
}

// upstreamOr500 maps a UAZAPI failure to a 500 carrying the upstream body
// verbatim, and everything else to a generic 500.
func (h *WhatsAppHandler) upstreamOr500(c *gin.Context, err error, op string) {
	var upstream *uazapi.UpstreamError
	if errors.As(err, &upstream) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": fmt.Sprintf("UAZAPI error: %s", upstream.Body),
		})
		return
	}
	h.logger.ErrorContext(c.Request.Context(), op, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
}
