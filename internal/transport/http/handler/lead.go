package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/paclead/platform-backend/internal/domain"
	"github.com/paclead/platform-backend/internal/transport/http/middleware"
)

type leadUsecaser interface {
	List(ctx context.Context, scopeID string) ([]*domain.Lead, error)
}

type LeadHandler struct {
	leadUsecase leadUsecaser
	logger      *slog.Logger
}

func NewLeadHandler(leadUsecase leadUsecaser, logger *slog.Logger) *LeadHandler {
	return &LeadHandler{leadUsecase: leadUsecase, logger: logger.With("component", "lead_handler")}
}

type leadResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Status         string    `json:"status"`
	Classification string    `json:"classification"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// GET /api/leads
func (h *LeadHandler) List(c *gin.Context) {
	scopeID := c.GetString(middleware.CtxScopeID)

	leads, err := h.leadUsecase.List(c.Request.Context(), scopeID)
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "list leads", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	resp := make([]leadResponse, 0, len(leads))
	for _, l := range leads {
		resp = append(resp, leadResponse{
			ID:             l.ID,
			Name:           l.Name,
			Phone:          l.Phone,
			Status:         l.Status,
			Classification: l.Classification,
			CreatedAt:      l.CreatedAt,
			UpdatedAt:      l.UpdatedAt,
		})
	}
	c.JSON(http.StatusOK, resp)
}
