package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"
	"github.com/paclead/platform-backend/config"
	"github.com/paclead/platform-backend/internal/auth"
	"github.com/paclead/platform-backend/internal/email"
	"github.com/paclead/platform-backend/internal/health"
	"github.com/paclead/platform-backend/internal/infrastructure/postgres"
	ctxlog "github.com/paclead/platform-backend/internal/log"
	"github.com/paclead/platform-backend/internal/metrics"
	httptransport "github.com/paclead/platform-backend/internal/transport/http"
	"github.com/paclead/platform-backend/internal/transport/http/handler"
	"github.com/paclead/platform-backend/internal/uazapi"
	"github.com/paclead/platform-backend/internal/usecase"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := newLogger(cfg.Env, cfg.SlogLevel())

	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		stop()
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	issuer, err := auth.NewIssuer([]byte(cfg.JWTSecret), cfg.JWTAlgorithm, cfg.JWTExpiration())
	if err != nil {
		stop()
		log.Fatalf("jwt: %v", err)
	}

	// Auth
	userRepo := postgres.NewUserRepository(pool)
	emailSender := email.NewSender(cfg.Env, cfg.ResendAPIKey, cfg.ResendFrom, logger)
	authUsecase := usecase.NewAuthUsecase(userRepo, issuer, emailSender, logger)
	authHandler := handler.NewAuthHandler(authUsecase, logger)

	// Leads
	leadRepo := postgres.NewLeadRepository(pool)
	leadUsecase := usecase.NewLeadUsecase(leadRepo)
	leadHandler := handler.NewLeadHandler(leadUsecase, logger)

	// Products
	productRepo := postgres.NewProductRepository(pool)
	productUsecase := usecase.NewProductUsecase(productRepo)
	productHandler := handler.NewProductHandler(productUsecase, logger)

	// Agent settings
	settingsRepo := postgres.NewAgentSettingsRepository(pool)
	settingsUsecase := usecase.NewSettingsUsecase(settingsRepo)
	settingsHandler := handler.NewSettingsHandler(settingsUsecase, logger)

	// WhatsApp (UAZAPI)
	sessionRepo := postgres.NewWhatsAppSessionRepository(pool)
	uazapiClient := uazapi.NewHTTPClient()
	whatsAppUsecase := usecase.NewWhatsAppUsecase(sessionRepo, uazapiClient, cfg.UazapiBase, cfg.UazapiToken)
	whatsAppHandler := handler.NewWhatsAppHandler(whatsAppUsecase, logger)

	metrics.Register()
	checker := health.NewChecker(pool, logger, prometheus.DefaultRegisterer)

	router := httptransport.NewRouter(logger, issuer, cfg.CORSOriginList(), httptransport.Handlers{
		Auth:     authHandler,
		Lead:     leadHandler,
		Product:  productHandler,
		Settings: settingsHandler,
		WhatsApp: whatsAppHandler,
	})

	srv := http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	metricsSrv := metrics.NewServer(":"+cfg.MetricsPort, checker)

	go func() {
		logger.Info("server started", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	go func() {
		logger.Info("metrics server started", "port", cfg.MetricsPort)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown", "error", err)
	}
}

func newLogger(env string, level slog.Level) *slog.Logger {
	var inner slog.Handler
	if env == "local" {
		inner = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		inner = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	}
	return slog.New(ctxlog.NewContextHandler(inner))
}
