package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paclead/platform-backend/internal/auth"
	"github.com/paclead/platform-backend/internal/transport/http/handler"
	"github.com/paclead/platform-backend/internal/transport/http/middleware"
	sloggin "github.com/samber/slog-gin"
)

// Handlers bundles the route handlers the router wires up.
type Handlers struct {
	Auth     *handler.AuthHandler
	Lead     *handler.LeadHandler
	Product  *handler.ProductHandler
	Settings *handler.SettingsHandler
	WhatsApp *handler.WhatsAppHandler
}

func NewRouter(logger *slog.Logger, issuer *auth.Issuer, corsOrigins []string, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		sloggin.New(logger),
		middleware.RequestID(),
		middleware.Metrics(),
		middleware.Security(),
		middleware.CORS(corsOrigins),
	)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "platform-backend"})
	})

	api := r.Group("/api")

	api.POST("/auth/signup", h.Auth.Signup)
	api.POST("/auth/login", h.Auth.Login)

	authed := api.Group("", middleware.Auth(issuer))

	authed.GET("/leads", h.Lead.List)

	authed.GET("/products", h.Product.List)
	authed.POST("/products", h.Product.Create)

	authed.GET("/settings/agent", h.Settings.Get)
	authed.PUT("/settings/agent", h.Settings.Update)

	authed.POST("/whatsapp/connect", h.WhatsApp.Connect)
	authed.GET("/whatsapp/status", h.WhatsApp.Status)

	return r
}
