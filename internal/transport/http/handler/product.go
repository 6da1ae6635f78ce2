package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/paclead/platform-backend/internal/domain"
	"github.com/paclead/platform-backend/internal/transport/http/middleware"
	"github.com/paclead/platform-backend/internal/usecase"
)

type productUsecaser interface {
	List(ctx context.Context, scopeID string) ([]*domain.Product, error)
	Create(ctx context.Context, scopeID string, input usecase.CreateProductInput) (*domain.Product, error)
}

type ProductHandler struct {
	productUsecase productUsecaser
	logger         *slog.Logger
}

func NewProductHandler(productUsecase productUsecaser, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger.With("component", "product_handler")}
}

type createProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
}

type productResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// GET /api/products
func (h *ProductHandler) List(c *gin.Context) {
	scopeID := c.GetString(middleware.CtxScopeID)

	products, err := h.productUsecase.List(c.Request.Context(), scopeID)
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "list products", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	resp := make([]productResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, toProductResponse(p))
	}
	c.JSON(http.StatusOK, resp)
}

// POST /api/products
func (h *ProductHandler) Create(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	scopeID := c.GetString(middleware.CtxScopeID)
	product, err := h.productUsecase.Create(c.Request.Context(), scopeID, usecase.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "create product", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, toProductResponse(product))
}
